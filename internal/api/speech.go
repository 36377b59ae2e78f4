package api

import (
	"encoding/json"
	"net/http"

	"github.com/voxroom/voxroom-backend/internal/api/respond"
)

// SpeechHandler holds the STT/TTS placeholder endpoints. They only pin down
// the request and response shapes a real speech service will have to fill.
type SpeechHandler struct{}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler() *SpeechHandler { return &SpeechHandler{} }

// SpeechToText POST /stt
func (h *SpeechHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AudioURL string `json:"audio_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{"text": "[STT stub]"})
}

// TextToSpeech POST /tts
func (h *SpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{"audio_url": "[TTS stub]"})
}
