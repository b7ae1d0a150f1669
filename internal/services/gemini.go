package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"greyhound-backend/internal/models"
)

type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	// Endpoint overrides the API base URL, e.g. https://127.0.0.1:8443.
	Endpoint string
	// HTTPClient replaces the SDK's transport. Requests made through it
	// carry no API key.
	HTTPClient *http.Client
}

// GeminiCompleter answers through Gemini's chat session API. System messages
// become the system instruction; the final user turn is sent against the
// preceding history.
type GeminiCompleter struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiCompleter(ctx context.Context, opts GeminiOptions) (*GeminiCompleter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(float32(opts.Temperature))
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	return &GeminiCompleter{client: client, model: model}, nil
}

func (c *GeminiCompleter) Name() string { return "gemini" }

func (c *GeminiCompleter) Close() error {
	return c.client.Close()
}

func (c *GeminiCompleter) Complete(ctx context.Context, messages []models.Message) (string, error) {
	system, history, last, err := splitForGemini(messages)
	if err != nil {
		return "", err
	}

	// Per-call copy so concurrent requests never share a system instruction.
	model := *c.model
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			slog.Warn("gemini candidate stopped early", "candidate", i, "finish_reason", cand.FinishReason.String())
		}
	}

	return extractText(resp), nil
}

// splitForGemini separates system text, prior turns and the final user
// prompt. Gemini names the assistant role "model" and wants history to open
// on a user turn, so leading assistant turns (the widget greeting) are
// dropped.
func splitForGemini(messages []models.Message) (string, []*genai.Content, string, error) {
	if len(messages) == 0 || messages[len(messages)-1].Role != models.RoleUser {
		return "", nil, "", errors.New("conversation must end with a user message")
	}

	var system []string
	var history []*genai.Content
	for _, msg := range messages[:len(messages)-1] {
		switch msg.Role {
		case models.RoleSystem:
			system = append(system, msg.Content)
		case models.RoleAssistant:
			if len(history) == 0 {
				continue
			}
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}

	return strings.Join(system, "\n\n"), history, messages[len(messages)-1].Content, nil
}

// extractText takes the first candidate only, matching choices[0] on the
// OpenAI-compatible path.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}
