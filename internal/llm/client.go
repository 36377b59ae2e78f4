package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/voxroom/voxroom-backend/internal/config"
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"
)

// Client calls an OpenAI-compatible /chat/completions endpoint. OpenAI and
// OpenRouter share the wire format, so one client serves both.
type Client struct {
	client *resty.Client
	model  string
	name   string
}

// NewOpenAI creates a client for the OpenAI API. OPENAI_BASE_URL overrides
// the endpoint (used by tests and proxies).
func NewOpenAI(apiKey, model string, timeout time.Duration) *Client {
	base := os.Getenv("OPENAI_BASE_URL")
	if base == "" {
		base = openAIBaseURL
	}
	return newClient("openai", base, apiKey, model, timeout)
}

// NewOpenRouter creates a client for the OpenRouter API. OPENROUTER_BASE_URL
// overrides the endpoint.
func NewOpenRouter(apiKey, model string, timeout time.Duration) *Client {
	base := os.Getenv("OPENROUTER_BASE_URL")
	if base == "" {
		base = openRouterBaseURL
	}
	return newClient("openrouter", base, apiKey, model, timeout)
}

func newClient(name, baseURL, apiKey, model string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, model: model, name: name}
}

// FromConfig selects the configured provider: OpenRouter when its key is set,
// else OpenAI, else nil (chat then falls back to a local echo reply).
func FromConfig(cfg *config.Config) Provider {
	switch {
	case cfg.OpenRouterAPIKey != "":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.ProviderTimeout())
	case cfg.OpenAIAPIKey != "":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ProviderTimeout())
	default:
		return nil
	}
}

// completionRequest / completionResponse structs for JSON binding

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Name identifies the provider in logs.
func (c *Client) Name() string { return c.name }

// Complete submits msgs and returns the first choice's content. A provider
// that answers without content yields ("", nil).
func (c *Client) Complete(ctx context.Context, msgs []Message, temperature float64, maxTokens int) (string, error) {
	reqBody := completionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%s request: %w", c.name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%s status %d: %s", c.name, resp.StatusCode(), resp.String())
	}

	var cr completionResponse
	if err := json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", nil
	}
	return cr.Choices[0].Message.Content, nil
}
