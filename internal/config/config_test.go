package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	for _, v := range []string{
		"HTTP_PORT", "LIVEKIT_API_KEY", "LIVEKIT_API_SECRET", "LIVEKIT_HOST",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENROUTER_API_KEY", "OPENROUTER_MODEL",
		"PROVIDER_TIMEOUT_SECONDS",
	} {
		_ = os.Unsetenv(v)
	}

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default http port: %d", cfg.HTTPPort)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" || cfg.OpenRouterModel != "openrouter/auto" {
		t.Fatalf("unexpected default models: %+v", cfg)
	}
	if cfg.ProviderTimeoutSeconds != 30 {
		t.Fatalf("unexpected default provider timeout: %d", cfg.ProviderTimeoutSeconds)
	}
	if got := cfg.ResolveLiveKitHost(); got != DefaultLiveKitHost {
		t.Fatalf("expected placeholder host when unset, got %s", got)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("OPENROUTER_MODEL", "meta-llama/llama-3-70b")
	_ = os.Setenv("LIVEKIT_HOST", "wss://rooms.example.com")
	defer func() {
		_ = os.Unsetenv("OPENROUTER_MODEL")
		_ = os.Unsetenv("LIVEKIT_HOST")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.OpenRouterModel != "meta-llama/llama-3-70b" {
		t.Fatalf("model env override failed, got %s", cfg.OpenRouterModel)
	}
	if cfg.ResolveLiveKitHost() != "wss://rooms.example.com" {
		t.Fatalf("host env override failed, got %s", cfg.ResolveLiveKitHost())
	}
}

func TestConfigLoad_TimeoutOverride(t *testing.T) {
	_ = os.Setenv("PROVIDER_TIMEOUT_SECONDS", "10")
	defer func() { _ = os.Unsetenv("PROVIDER_TIMEOUT_SECONDS") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.ProviderTimeoutSeconds != 10 {
		t.Fatalf("provider timeout env override failed, got %d", cfg.ProviderTimeoutSeconds)
	}
}
