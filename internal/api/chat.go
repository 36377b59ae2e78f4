package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
	"github.com/voxroom/voxroom-backend/internal/chat"
	"github.com/voxroom/voxroom-backend/internal/memory"
)

// ChatHandler relays user messages to the reply generator and keeps the
// per-user ledger current.
type ChatHandler struct {
	store   *memory.Store
	replier *chat.Replier
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(store *memory.Store, replier *chat.Replier) *ChatHandler {
	return &ChatHandler{store: store, replier: replier}
}

// Chat POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	username := strings.TrimSpace(req.Username)
	message := strings.TrimSpace(req.Message)
	if username == "" || message == "" {
		respond.WriteBadRequest(w, "username and message are required")
		return
	}

	// Serialize the read-generate-append sequence per user so concurrent
	// chats for the same user cannot interleave their ledger updates.
	h.store.LockUser(username)
	defer h.store.UnlockUser(username)

	history := h.store.Read(username)
	userEntry := memory.Entry{Role: memory.RoleUser, Content: message}

	reply := h.replier.Reply(r.Context(), username, message, append(history, userEntry))

	h.store.Append(username, []memory.Entry{
		userEntry,
		{Role: memory.RoleAssistant, Content: reply},
	}, memory.ChatCap)

	respond.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
