package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
	"github.com/voxroom/voxroom-backend/internal/events"
	"github.com/voxroom/voxroom-backend/internal/memory"
)

// HandoffHandler acknowledges context handoff requests. It reads the source
// ledger for its size and announces the handoff on the in-process bus; the
// ledger itself is neither mutated nor transmitted.
type HandoffHandler struct {
	store *memory.Store
	bus   *events.Bus
	log   zerolog.Logger
}

// NewHandoffHandler creates a HandoffHandler. bus may be nil in tests.
func NewHandoffHandler(store *memory.Store, bus *events.Bus, log zerolog.Logger) *HandoffHandler {
	return &HandoffHandler{store: store, bus: bus, log: log}
}

// Handoff POST /handoff
func (h *HandoffHandler) Handoff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromUser string `json:"from_user"`
		ToAgent  string `json:"to_agent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	size := h.store.Len(req.FromUser)

	if h.bus != nil {
		evt := events.HandoffEvent{FromUser: req.FromUser, ToAgent: req.ToAgent, ContextSize: size}
		if !h.bus.Publish(evt) {
			h.log.Warn().
				Str("from_user", req.FromUser).
				Str("to_agent", req.ToAgent).
				Msg("handoff event dropped, bus full")
		}
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":           true,
		"to":           req.ToAgent,
		"context_size": size,
	})
}
