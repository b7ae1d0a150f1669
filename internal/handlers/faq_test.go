package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greyhound-backend/internal/models"
)

func TestFAQHandler_List(t *testing.T) {
	rr := httptest.NewRecorder()
	NewDefaultFAQHandler().List(rr, httptest.NewRequest(http.MethodGet, "/api/faq", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.FAQResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Items, 6)
	assert.Equal(t, "How long do greyhounds live?", resp.Items[0].Question)
}

func TestFAQHandler_Suggestions(t *testing.T) {
	rr := httptest.NewRecorder()
	NewFAQHandler(nil, []string{"Do greyhounds bark?"}).
		Suggestions(rr, httptest.NewRequest(http.MethodGet, "/api/chat/suggestions", nil))

	var resp models.SuggestionsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []string{"Do greyhounds bark?"}, resp.Questions)
}
