package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/handlers"
	"greyhound-backend/internal/services"
)

func newTestRouter(staticDir string) http.Handler {
	return New(
		handlers.NewChatHandler(services.NewRelayService(nil, content.Persona)),
		handlers.NewDefaultFAQHandler(),
		"http://localhost:3000",
		staticDir,
	)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/faq", "", http.StatusOK},
		{http.MethodGet, "/api/chat/suggestions", "", http.StatusOK},
		{http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`, http.StatusInternalServerError},
		{http.MethodGet, "/api/chat", "", http.StatusMethodNotAllowed},
	}

	h := newTestRouter("")
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_ServesStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Greyhound Sanctuary</h1>"), 0o644))

	rr := httptest.NewRecorder()
	newTestRouter(dir).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Greyhound Sanctuary")
}
