// Package llm contains the chat-completion provider abstraction and the
// OpenAI-compatible HTTP client used by both configured providers.
package llm

import "context"

// Message is one chat message in provider wire order.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the single capability the chat path needs from an LLM service.
// An empty completion with a nil error means the provider answered with no
// content; callers decide how to present that.
type Provider interface {
	Complete(ctx context.Context, msgs []Message, temperature float64, maxTokens int) (string, error)
	Name() string
}
