package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"greyhound-backend/internal/models"
)

// TogetherOptions configures a completer for an OpenAI-compatible endpoint.
type TogetherOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

// TogetherCompleter talks to Together AI through its OpenAI-compatible
// chat-completions API.
type TogetherCompleter struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

func NewTogetherCompleter(opts TogetherOptions) (*TogetherCompleter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("together api key is required")
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("together model is required")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &TogetherCompleter{
		client:      openai.NewClient(reqOpts...),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}, nil
}

func (c *TogetherCompleter) Name() string { return "together" }

func (c *TogetherCompleter) Complete(ctx context.Context, messages []models.Message) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, c.buildParams(messages))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("status %d: %w", apiErr.StatusCode, err)
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *TogetherCompleter) buildParams(messages []models.Message) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: toOpenAIMessages(messages),
	}
	params.Temperature = openai.Float(c.temperature)
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}
	return params
}

func toOpenAIMessages(messages []models.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case models.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}
