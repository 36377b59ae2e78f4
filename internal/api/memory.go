package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
	"github.com/voxroom/voxroom-backend/internal/memory"
)

// MemoryHandler exposes the per-user conversation ledger.
type MemoryHandler struct {
	store *memory.Store
}

// NewMemoryHandler creates a MemoryHandler.
func NewMemoryHandler(store *memory.Store) *MemoryHandler {
	return &MemoryHandler{store: store}
}

// GetMemory GET /memory/{username}
// Returns the stored sequence as-is; the cap was applied at write time.
func (h *MemoryHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"username": username,
		"entries":  h.store.Read(username),
	})
}

// UpsertMemory POST /memory
// Unlike /chat, no emptiness validation happens here; any decodable payload
// is accepted.
func (h *MemoryHandler) UpsertMemory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string         `json:"username"`
		Entries  []memory.Entry `json:"entries"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	count := h.store.Append(req.Username, req.Entries, memory.UpsertCap)

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"count": count,
	})
}
