package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greyhound-backend/internal/models"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, messages []models.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *mockCompleter) Name() string { return "mock" }

func TestRelay_PrependsPersonaAndReturnsReply(t *testing.T) {
	completer := &mockCompleter{}
	conversation := []models.Message{
		{Role: models.RoleAssistant, Content: "Hello!"},
		{Role: models.RoleUser, Content: "How long do greyhounds live?"},
	}
	completer.
		On("Complete", mock.Anything, []models.Message{
			{Role: models.RoleSystem, Content: "persona"},
			{Role: models.RoleAssistant, Content: "Hello!"},
			{Role: models.RoleUser, Content: "How long do greyhounds live?"},
		}).
		Return("**12-14 years**", nil)

	reply, err := NewRelayService(completer, "persona").Relay(context.Background(), conversation)

	require.NoError(t, err)
	assert.Equal(t, "**12-14 years**", reply)
	completer.AssertExpectations(t)
}

func TestRelay_NotConfigured(t *testing.T) {
	s := NewRelayService(nil, "persona")

	_, err := s.Relay(context.Background(), []models.Message{{Role: models.RoleUser, Content: "hi"}})

	var cfgErr *ConfigError
	assert.False(t, s.Configured())
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRelay_ValidationFailuresSkipUpstream(t *testing.T) {
	tests := []struct {
		name         string
		conversation []models.Message
	}{
		{"empty", []models.Message{}},
		{"ends with assistant", []models.Message{{Role: models.RoleAssistant, Content: "hi"}}},
		{"ends with system", []models.Message{{Role: models.RoleUser, Content: "q"}, {Role: models.RoleSystem, Content: "s"}}},
		{"unknown role", []models.Message{{Role: "tool", Content: "x"}, {Role: models.RoleUser, Content: "q"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			completer := &mockCompleter{}

			_, err := NewRelayService(completer, "persona").Relay(context.Background(), tc.conversation)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestRelay_UpstreamFailureIsWrapped(t *testing.T) {
	completer := &mockCompleter{}
	cause := errors.New("status 503: overloaded")
	completer.On("Complete", mock.Anything, mock.Anything).Return("", cause)

	_, err := NewRelayService(completer, "persona").
		Relay(context.Background(), []models.Message{{Role: models.RoleUser, Content: "q"}})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "mock", upErr.Provider)
	assert.ErrorIs(t, err, cause)
}

func TestRelay_EmptyCompletionIsUpstreamFailure(t *testing.T) {
	completer := &mockCompleter{}
	completer.On("Complete", mock.Anything, mock.Anything).Return("", nil)

	_, err := NewRelayService(completer, "persona").
		Relay(context.Background(), []models.Message{{Role: models.RoleUser, Content: "q"}})

	var upErr *UpstreamError
	assert.ErrorAs(t, err, &upErr)
}

func TestBuildUpstreamMessages_DoesNotMutateInput(t *testing.T) {
	conversation := []models.Message{{Role: models.RoleUser, Content: "q", IsError: true}}

	out := BuildUpstreamMessages("persona", conversation)

	require.Len(t, out, 2)
	assert.Equal(t, models.RoleSystem, out[0].Role)
	assert.Equal(t, "persona", out[0].Content)
	assert.False(t, out[1].IsError)
	assert.Len(t, conversation, 1)
}
