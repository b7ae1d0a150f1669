package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greyhound-backend/internal/config"
	"greyhound-backend/internal/content"
	"greyhound-backend/internal/handlers"
	"greyhound-backend/internal/logging"
	"greyhound-backend/internal/router"
	"greyhound-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Logging ────
	logger, err := logging.Init(cfg)
	if err != nil {
		logger.Warn("✗ log file unavailable, logging to stderr", "error", err)
	}
	logger.Info("🚀 Starting Greyhound Sanctuary backend", "env", cfg.Env)

	// ──── Step 3: Upstream Provider ────
	completer, err := services.NewCompleter(context.Background(), cfg)
	if err != nil {
		logger.Error("✗ provider initialization failed", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}
	if completer == nil {
		logger.Warn("✗ provider credential not set; /api/chat will answer 500", "provider", cfg.Provider)
	} else {
		logger.Info("✓ provider client initialized", "provider", completer.Name(), "model", cfg.Model)
	}
	if closer, ok := completer.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// ──── Step 4: Handlers ────
	relayService := services.NewRelayService(completer, content.Persona)
	chatHandler := handlers.NewChatHandler(relayService)
	faqHandler := handlers.NewDefaultFAQHandler()

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, faqHandler, cfg.FrontendURL, cfg.StaticDir)

	// No write deadline: a slow provider call is bounded only by the
	// provider and the platform.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("✓ Greyhound backend ready", "addr", "http://localhost:"+cfg.Port, "chat", "/api/chat")

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
