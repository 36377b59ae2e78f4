package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voxroom/voxroom-backend/internal/config"
)

func newProviderConfig(openAIKey, openRouterKey string) *config.Config {
	cfg := config.NewForTesting()
	cfg.OpenAIAPIKey = openAIKey
	cfg.OpenRouterAPIKey = openRouterKey
	return cfg
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	t.Setenv("OPENAI_BASE_URL", ts.URL)
	return NewOpenAI("sk-test", "gpt-4o-mini", 5*time.Second)
}

func TestComplete_SendsRequestAndReturnsContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-4o-mini", req.Model)
		require.InDelta(t, 0.6, req.Temperature, 1e-9)
		require.Equal(t, 300, req.MaxTokens)
		require.Len(t, req.Messages, 2)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hi there"}},
			},
		})
	})

	out, err := c.Complete(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "hello"},
	}, 0.6, 300)
	require.NoError(t, err)
	require.Equal(t, "hi there", out)
}

func TestComplete_NonOKStatusIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	})

	_, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "x"}}, 0.6, 300)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 429")
}

func TestComplete_EmptyChoicesIsEmptyContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	out, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "x"}}, 0.6, 300)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestComplete_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, []Message{{Role: "user", Content: "x"}}, 0.6, 300)
	require.Error(t, err)
}

func TestFromConfig_Priority(t *testing.T) {
	// silence accidental real endpoints in case a test env sets overrides
	_ = os.Unsetenv("OPENAI_BASE_URL")
	_ = os.Unsetenv("OPENROUTER_BASE_URL")

	cfg := newProviderConfig("", "")
	require.Nil(t, FromConfig(cfg))

	cfg = newProviderConfig("sk-openai", "")
	p := FromConfig(cfg)
	require.NotNil(t, p)
	require.Equal(t, "openai", p.Name())

	cfg = newProviderConfig("sk-openai", "sk-or")
	p = FromConfig(cfg)
	require.NotNil(t, p)
	require.Equal(t, "openrouter", p.Name())
}
