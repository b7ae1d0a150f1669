package services

import (
	"context"
	"fmt"

	"greyhound-backend/internal/config"
)

// NewCompleter builds the completer for cfg.Provider. It returns a nil
// completer and no error when the provider credential is absent, leaving the
// relay unconfigured rather than failing startup.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	if cfg.APIKey() == "" {
		return nil, nil
	}

	var (
		completer Completer
		err       error
	)
	switch cfg.Provider {
	case config.ProviderTogether:
		completer, err = NewTogetherCompleter(TogetherOptions{
			APIKey:      cfg.TogetherAPIKey,
			BaseURL:     cfg.TogetherAPIURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
	case config.ProviderGemini:
		completer, err = NewGeminiCompleter(ctx, GeminiOptions{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown relay provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return completer, nil
}
