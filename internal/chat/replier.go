// Package chat turns user messages into assistant replies, degrading to
// local fallback text whenever the LLM provider is missing or failing.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voxroom/voxroom-backend/internal/llm"
	"github.com/voxroom/voxroom-backend/internal/memory"
)

const (
	systemPrompt = "You are a helpful, empathetic AI chat assistant. You can recall a user's past " +
		"context from provided memory entries to personalize your response. Keep replies concise."

	// historyWindow is how many trailing ledger entries are summarized into
	// the context message.
	historyWindow = 10

	temperature = 0.6
	maxTokens   = 300

	emptyReplyPlaceholder = "(no response)"
)

// Replier generates assistant replies. provider may be nil, in which case
// every reply is the unconfigured echo fallback.
type Replier struct {
	provider llm.Provider
	timeout  time.Duration
	log      zerolog.Logger
}

// NewReplier creates a Replier. timeout bounds each provider call.
func NewReplier(provider llm.Provider, timeout time.Duration, log zerolog.Logger) *Replier {
	return &Replier{provider: provider, timeout: timeout, log: log}
}

// Reply produces the assistant reply for message given the user's history.
// It never fails: provider errors are folded into the returned text so chat
// stays available when the provider is down.
func (r *Replier) Reply(ctx context.Context, username, message string, history []memory.Entry) string {
	if r.provider == nil {
		return "[AI] OpenAI/OpenRouter not configured. Set OPENAI_API_KEY or OPENROUTER_API_KEY. " +
			"Echo: " + message
	}

	msgs := r.buildMessages(username, message, history)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reply, err := r.provider.Complete(ctx, msgs, temperature, maxTokens)
	if err != nil {
		r.log.Warn().Err(err).
			Str("provider", r.provider.Name()).
			Str("username", username).
			Msg("completion failed, returning fallback reply")
		return fmt.Sprintf("[AI Error] %v", err)
	}
	if reply == "" {
		return emptyReplyPlaceholder
	}
	return reply
}

// buildMessages assembles the provider message sequence: persona, an optional
// system message carrying the last historyWindow ledger entries, then the new
// user message.
func (r *Replier) buildMessages(username, message string, history []memory.Entry) []llm.Message {
	msgs := []llm.Message{{Role: "system", Content: systemPrompt}}

	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		lines := make([]string, 0, len(recent))
		for _, e := range recent {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Role, e.Content))
		}
		msgs = append(msgs, llm.Message{
			Role:    "system",
			Content: "Relevant memory/context for user '" + username + "':\n" + strings.Join(lines, "\n"),
		})
	}

	msgs = append(msgs, llm.Message{Role: "user", Content: message})
	return msgs
}
