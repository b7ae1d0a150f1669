package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"greyhound-backend/internal/middleware"
	"greyhound-backend/internal/models"
	"greyhound-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError maps the relay error taxonomy onto status codes. Only
// generic messages reach the caller; upstream causes are logged.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *services.ValidationError
		configErr     *services.ConfigError
		upstreamErr   *services.UpstreamError
	)
	requestID := middleware.GetRequestID(r.Context())

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp(validationErr.Message))
	case errors.As(err, &configErr):
		slog.Error("relay not configured", "request_id", requestID, "error", configErr.Message)
		writeJSON(w, http.StatusInternalServerError, errorResp(configErr.Message))
	case errors.As(err, &upstreamErr):
		slog.Error("upstream provider call failed",
			"request_id", requestID,
			"provider", upstreamErr.Provider,
			"error", upstreamErr.Err,
		)
		writeJSON(w, http.StatusBadGateway, errorResp("Failed to get response from AI provider"))
	default:
		slog.Error("chat relay failed", "request_id", requestID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal server error"))
	}
}
