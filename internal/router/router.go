package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"greyhound-backend/internal/handlers"
	"greyhound-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	faqHandler *handlers.FAQHandler,
	frontendURL string,
	staticDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/", chatHandler.Relay)
			r.Get("/suggestions", faqHandler.Suggestions)
		})
		r.Get("/faq", faqHandler.List)
	})

	// Built site pages, when present
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(staticDir)))
		}
	}

	return r
}
