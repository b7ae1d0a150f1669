package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
)

// Relayer sends a conversation and returns the assistant's reply.
type Relayer interface {
	Send(ctx context.Context, messages []models.Message) (string, error)
}

var errEmptyReply = errors.New("relay returned an empty reply")

// suggestionLimit is the conversation length up to which sample questions
// are offered.
const suggestionLimit = 2

// Widget is one chat panel's state for the life of a session. At most one
// relay call is in flight; a send attempted meanwhile is dropped.
type Widget struct {
	mu sync.Mutex

	relay        Relayer
	messages     []models.Message
	pendingInput string
	isSending    bool
	open         bool
	suggestions  []string
}

func NewWidget(relay Relayer) *Widget {
	return &Widget{
		relay:       relay,
		messages:    []models.Message{{Role: models.RoleAssistant, Content: content.Greeting}},
		suggestions: content.Suggestions(),
	}
}

// SetSuggestions replaces the sample questions, e.g. with the server's list.
func (w *Widget) SetSuggestions(questions []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suggestions = append([]string(nil), questions...)
}

func (w *Widget) SetInput(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingInput = s
}

func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pendingInput
}

func (w *Widget) IsSending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isSending
}

// Messages returns a copy of the conversation.
func (w *Widget) Messages() []models.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.Message(nil), w.messages...)
}

func (w *Widget) Toggle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
}

func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = false
}

func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Suggestions returns the sample questions while the conversation is still
// fresh, and nil afterwards.
func (w *Widget) Suggestions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.messages) > suggestionLimit {
		return nil
	}
	return append([]string(nil), w.suggestions...)
}

// AskSuggestion copies sample question i into the input. It does not send.
func (w *Widget) AskSuggestion(i int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.messages) > suggestionLimit || i < 0 || i >= len(w.suggestions) {
		return false
	}
	w.pendingInput = w.suggestions[i]
	return true
}

// Begin starts a send: it appends the pending input as a user message,
// clears the input and marks the widget busy. It returns the conversation to
// relay, or false when the input is blank or a send is already in flight.
func (w *Widget) Begin() ([]models.Message, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if strings.TrimSpace(w.pendingInput) == "" || w.isSending {
		return nil, false
	}

	w.messages = append(w.messages, models.Message{Role: models.RoleUser, Content: w.pendingInput})
	w.pendingInput = ""
	w.isSending = true

	return append([]models.Message(nil), w.messages...), true
}

// Finish ends a send started by Begin. A failure or empty reply appends the
// fixed apology flagged as an error.
func (w *Widget) Finish(reply string, err error) {
	if err == nil && reply == "" {
		err = errEmptyReply
	}
	if err != nil {
		slog.Warn("chat relay failed", "error", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.messages = append(w.messages, models.Message{Role: models.RoleAssistant, Content: content.Apology, IsError: true})
	} else {
		w.messages = append(w.messages, models.Message{Role: models.RoleAssistant, Content: reply})
	}
	w.isSending = false
}

// Relay sends conversation through the widget's relayer, turning a panic
// into an error. Callers pair it with Begin and Finish.
func (w *Widget) Relay(ctx context.Context, conversation []models.Message) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("relay panicked: %v", r)
		}
	}()
	return w.relay.Send(ctx, conversation)
}

// Send runs a full turn synchronously. It reports whether a relay call was
// made; failures are absorbed into the conversation, never returned.
func (w *Widget) Send(ctx context.Context) bool {
	conversation, ok := w.Begin()
	if !ok {
		return false
	}
	w.Finish(w.Relay(ctx, conversation))
	return true
}
