package api

import (
	"net/http"

	"github.com/edrosario/stark/internal/voice"
)

// VoiceHandler routes recognized command text to an application action.
// The speech engines live client-side; this endpoint only sees text.
type VoiceHandler struct{}

type voiceRequest struct {
	Text string `json:"text"`
}

type voiceResponse struct {
	Action voice.Action `json:"action"`
	Say    string       `json:"say"`
}

// Command handles POST /api/voice.
func (h *VoiceHandler) Command(w http.ResponseWriter, r *http.Request) {
	var req voiceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		jsonError(w, http.StatusBadRequest, "text required")
		return
	}

	action, say := voice.Route(req.Text)
	jsonResponse(w, http.StatusOK, voiceResponse{Action: action, Say: say})
}
