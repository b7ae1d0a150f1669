package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
	"greyhound-backend/internal/services"
)

// fakeUpstream stands in for the provider's chat-completions endpoint.
func fakeUpstream(t *testing.T, status int, body string) (*services.RelayService, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	completer, err := services.NewTogetherCompleter(services.TogetherOptions{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "meta-llama/Llama-3-70b-chat-hf",
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	require.NoError(t, err)
	return services.NewRelayService(completer, content.Persona), hits
}

const okCompletion = `{"id":"c1","object":"chat.completion","created":1,"model":"m",
"choices":[{"index":0,"message":{"role":"assistant","content":"Greyhounds usually live **12-14 years**."},"finish_reason":"stop"}]}`

func postChat(h *ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Relay(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestChatHandler_RoundTrip(t *testing.T) {
	relay, hits := fakeUpstream(t, http.StatusOK, okCompletion)

	rr := postChat(NewChatHandler(relay), `{"messages":[{"role":"user","content":"How long do greyhounds live?"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Greyhounds usually live **12-14 years**.", resp.Response)
	assert.Equal(t, int32(1), hits.Load())
}

func TestChatHandler_InvalidBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `hello`},
		{"messages missing", `{}`},
		{"messages null", `{"messages":null}`},
		{"messages not array", `{"messages":"How long do greyhounds live?"}`},
		{"messages object", `{"messages":{"role":"user","content":"hi"}}`},
		{"top-level array", `[{"role":"user","content":"hi"}]`},
		{"empty array", `{"messages":[]}`},
		{"last from assistant", `{"messages":[{"role":"assistant","content":"hi"}]}`},
		{"last from system", `{"messages":[{"role":"user","content":"q"},{"role":"system","content":"s"}]}`},
		{"unknown role", `{"messages":[{"role":"tool","content":"x"},{"role":"user","content":"q"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			relay, hits := fakeUpstream(t, http.StatusOK, okCompletion)

			rr := postChat(NewChatHandler(relay), tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
			assert.Zero(t, hits.Load(), "upstream must not be called")
		})
	}
}

func TestChatHandler_OversizedBody(t *testing.T) {
	relay, _ := fakeUpstream(t, http.StatusOK, okCompletion)
	body := `{"messages":[{"role":"user","content":"` + strings.Repeat("a", maxRequestBodySize) + `"}]}`

	rr := postChat(NewChatHandler(relay), body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatHandler_MissingCredentialAlways500(t *testing.T) {
	h := NewChatHandler(services.NewRelayService(nil, content.Persona))

	for _, body := range []string{
		`{"messages":[{"role":"user","content":"hi"}]}`,
		`{"messages":[]}`,
		`garbage`,
	} {
		rr := postChat(h, body)

		assert.Equal(t, http.StatusInternalServerError, rr.Code, body)
		assert.Equal(t, "API key not configured", decodeError(t, rr))
	}
}

func TestChatHandler_UpstreamErrorIsNotLeaked(t *testing.T) {
	const secret = "org-quota-exceeded-for-account-8f3a"
	relay, _ := fakeUpstream(t, http.StatusTooManyRequests,
		`{"error":{"message":"`+secret+`","type":"rate_limit"}}`)

	rr := postChat(NewChatHandler(relay), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	body := rr.Body.String()
	assert.NotContains(t, body, secret)
	assert.Contains(t, body, "Failed to get response from AI provider")
}

func TestChatHandler_UpstreamShapeDeviations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty choices", `{"id":"c","object":"chat.completion","created":1,"model":"m","choices":[]}`},
		{"missing content", `{"id":"c","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"message":{"role":"assistant"},"finish_reason":"stop"}]}`},
		{"malformed json", `{"choices":[`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			relay, _ := fakeUpstream(t, http.StatusOK, tc.body)

			rr := postChat(NewChatHandler(relay), `{"messages":[{"role":"user","content":"hi"}]}`)

			assert.Equal(t, http.StatusBadGateway, rr.Code)
		})
	}
}

func TestChatHandler_GeminiFailureHidesUpstreamBody(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"secret-internal","status":"INTERNAL"}}`))
	}))
	t.Cleanup(server.Close)

	completer, err := services.NewGeminiCompleter(t.Context(), services.GeminiOptions{
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		Endpoint:   server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { completer.Close() })

	rr := postChat(NewChatHandler(services.NewRelayService(completer, content.Persona)),
		`{"messages":[{"role":"assistant","content":"Hello!"},{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret-internal")
	assert.Equal(t, "Failed to get response from AI provider", decodeError(t, rr))
}
