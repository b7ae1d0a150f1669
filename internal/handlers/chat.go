package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"greyhound-backend/internal/models"
	"greyhound-backend/internal/services"
)

const maxRequestBodySize = 1 << 20

type chatRelayer interface {
	Configured() bool
	Relay(ctx context.Context, conversation []models.Message) (string, error)
}

var _ chatRelayer = (*services.RelayService)(nil)

type ChatHandler struct {
	relay chatRelayer
}

func NewChatHandler(relay chatRelayer) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// Relay answers POST /api/chat. The credential check comes first so that an
// unconfigured deployment answers 500 whatever the body holds.
func (h *ChatHandler) Relay(w http.ResponseWriter, r *http.Request) {
	if !h.relay.Configured() {
		handleServiceError(w, r, &services.ConfigError{Message: "API key not configured"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body: messages is required and must be an array"))
		return
	}

	reply, err := h.relay.Relay(r.Context(), *req.Messages)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
