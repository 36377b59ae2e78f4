package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
	"github.com/voxroom/voxroom-backend/internal/token"
)

// TokenHandler issues LiveKit room access tokens.
type TokenHandler struct {
	builder *token.Builder
	log     zerolog.Logger
}

// NewTokenHandler creates a TokenHandler.
func NewTokenHandler(builder *token.Builder, log zerolog.Logger) *TokenHandler {
	return &TokenHandler{builder: builder, log: log}
}

// CreateToken POST /token
func (h *TokenHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomName string `json:"roomName"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	url, signed, err := h.builder.Build(req.RoomName, req.Username)
	if err != nil {
		if errors.Is(err, token.ErrNotConfigured) {
			respond.WriteInternalError(w, "LiveKit credentials not configured")
			return
		}
		h.log.Error().Stack().Err(err).Msg("token signing failed")
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"url":   url,
		"token": signed,
	})
}
