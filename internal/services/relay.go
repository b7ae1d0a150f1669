package services

import (
	"context"
	"errors"
	"fmt"

	"greyhound-backend/internal/models"
)

// Completer submits an upstream-ready conversation to a chat-completion
// provider and returns the first completion's text.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
	Name() string
}

var errEmptyCompletion = errors.New("completion has no content")

// RelayService answers a user turn by forwarding the conversation, behind a
// fixed persona, to the configured provider. It keeps no state between calls.
type RelayService struct {
	completer Completer
	persona   string
}

// NewRelayService returns a relay. A nil completer means no provider
// credential was configured; every Relay call then fails with ConfigError.
func NewRelayService(completer Completer, persona string) *RelayService {
	return &RelayService{
		completer: completer,
		persona:   persona,
	}
}

func (s *RelayService) Configured() bool {
	return s.completer != nil
}

func (s *RelayService) Relay(ctx context.Context, conversation []models.Message) (string, error) {
	if !s.Configured() {
		return "", &ConfigError{Message: "API key not configured"}
	}

	if err := ValidateConversation(conversation); err != nil {
		return "", err
	}

	reply, err := s.completer.Complete(ctx, BuildUpstreamMessages(s.persona, conversation))
	if err != nil {
		return "", &UpstreamError{Provider: s.completer.Name(), Err: err}
	}
	if reply == "" {
		return "", &UpstreamError{Provider: s.completer.Name(), Err: errEmptyCompletion}
	}

	return reply, nil
}

// ValidateConversation checks that the conversation is non-empty, uses only
// known roles and ends on a user turn.
func ValidateConversation(conversation []models.Message) error {
	if len(conversation) == 0 {
		return &ValidationError{Message: "Last message must be from user"}
	}

	for i, msg := range conversation {
		if !msg.Role.Valid() {
			return &ValidationError{Message: fmt.Sprintf("Invalid role %q at message %d", msg.Role, i)}
		}
	}

	if conversation[len(conversation)-1].Role != models.RoleUser {
		return &ValidationError{Message: "Last message must be from user"}
	}

	return nil
}

// BuildUpstreamMessages prepends the persona as a system message. The
// caller's slice is not modified.
func BuildUpstreamMessages(persona string, conversation []models.Message) []models.Message {
	out := make([]models.Message, 0, len(conversation)+1)
	out = append(out, models.Message{Role: models.RoleSystem, Content: persona})
	for _, msg := range conversation {
		out = append(out, models.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}
