package models

// Role tags who authored a message in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is one of the roles the relay accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is a single role-tagged turn. IsError marks a locally generated
// fallback reply and never goes over the wire.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	IsError bool   `json:"-"`
}

// ChatRequest is the payload accepted by the relay endpoint. Messages is a
// pointer so that an absent or null field can be told apart from [].
type ChatRequest struct {
	Messages *[]Message `json:"messages"`
}

// ChatResponse is the relay endpoint's success body.
type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuggestionsResponse struct {
	Questions []string `json:"questions"`
}
