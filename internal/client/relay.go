// Package client talks to the relay endpoint and holds the chat widget's
// per-session state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"greyhound-backend/internal/models"
)

const defaultTimeout = 2 * time.Minute

// RelayClient calls the sanctuary backend's chat, FAQ and suggestion
// endpoints.
type RelayClient struct {
	baseURL string
	http    *http.Client
}

// NewRelayClient targets baseURL (e.g. http://localhost:8080). A nil
// httpClient gets a client with a generous timeout.
func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// StatusError is a non-success answer from the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("relay returned status %d: %s", e.StatusCode, e.Message)
}

// Send posts the whole conversation and returns the assistant's reply.
func (c *RelayClient) Send(ctx context.Context, messages []models.Message) (string, error) {
	payload, err := json.Marshal(map[string][]models.Message{"messages": messages})
	if err != nil {
		return "", fmt.Errorf("failed to encode conversation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp models.ChatResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *RelayClient) FAQ(ctx context.Context) ([]models.FAQItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/faq", nil)
	if err != nil {
		return nil, err
	}

	var resp models.FAQResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *RelayClient) Suggestions(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/chat/suggestions", nil)
	if err != nil {
		return nil, err
	}

	var resp models.SuggestionsResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

func (c *RelayClient) do(req *http.Request, out interface{}) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errBody models.ErrorResponse
		json.NewDecoder(res.Body).Decode(&errBody)
		return &StatusError{StatusCode: res.StatusCode, Message: errBody.Error}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}
	return nil
}
