package api

import (
	"net/http"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
)

// HealthHandler handles the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Check handles GET /health. The service has no hard dependencies to probe:
// the ledger is in-process and provider absence is a degraded mode, not an
// outage, so a running process is a healthy process.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
