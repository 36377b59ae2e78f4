package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// DefaultLiveKitHost is returned from /token when LIVEKIT_HOST is unset. It is
// a deliberate placeholder so misconfigured deployments are easy to spot.
const DefaultLiveKitHost = "wss://your-livekit-server"

// Config holds the configuration for the voxroom backend.
// Variable names are unprefixed on purpose: the deployment surface
// (LIVEKIT_*, OPENAI_*, OPENROUTER_*) is shared with the other room services.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// LiveKit room provider credentials. Absence is only an error at
	// token-issue time; the rest of the service runs without them.
	LiveKitAPIKey    string `envconfig:"LIVEKIT_API_KEY" default:""`
	LiveKitAPISecret string `envconfig:"LIVEKIT_API_SECRET" default:""`
	LiveKitHost      string `envconfig:"LIVEKIT_HOST" default:""`

	// LLM provider credentials. OpenRouter wins over OpenAI when both are
	// set; with neither, chat degrades to an echo fallback.
	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel      string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenRouterAPIKey string `envconfig:"OPENROUTER_API_KEY" default:""`
	OpenRouterModel  string `envconfig:"OPENROUTER_MODEL" default:"openrouter/auto"`

	// Upper bound on a single outbound completion call.
	ProviderTimeoutSeconds int `envconfig:"PROVIDER_TIMEOUT_SECONDS" default:"30"`
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Bool("livekit_configured", cfg.LiveKitAPIKey != "" && cfg.LiveKitAPISecret != "").
		Str("livekit_host", cfg.ResolveLiveKitHost()).
		Bool("openai_configured", cfg.OpenAIAPIKey != "").
		Bool("openrouter_configured", cfg.OpenRouterAPIKey != "").
		Int("provider_timeout_seconds", cfg.ProviderTimeoutSeconds).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config with fixed values for unit tests.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:               8080,
		LiveKitAPIKey:          "test-key",
		LiveKitAPISecret:       "test-secret",
		LiveKitHost:            "wss://livekit.test",
		OpenAIModel:            "gpt-4o-mini",
		OpenRouterModel:        "openrouter/auto",
		ProviderTimeoutSeconds: 5,
	}
}

// ResolveLiveKitHost returns the configured LiveKit URL or the placeholder
// default when unset.
func (c *Config) ResolveLiveKitHost() string {
	if c.LiveKitHost == "" {
		return DefaultLiveKitHost
	}
	return c.LiveKitHost
}

// ProviderTimeout returns the outbound completion call bound as a Duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
