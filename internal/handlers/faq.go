package handlers

import (
	"net/http"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
)

type FAQHandler struct {
	items       []models.FAQItem
	suggestions []string
}

func NewFAQHandler(items []models.FAQItem, suggestions []string) *FAQHandler {
	return &FAQHandler{items: items, suggestions: suggestions}
}

// NewDefaultFAQHandler serves the site's built-in FAQ and sample questions.
func NewDefaultFAQHandler() *FAQHandler {
	return NewFAQHandler(content.FAQ(), content.Suggestions())
}

func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.FAQResponse{Items: h.items})
}

func (h *FAQHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SuggestionsResponse{Questions: h.suggestions})
}
