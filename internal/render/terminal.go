// Package render turns conversation messages into display text. Assistant
// content is interpreted as markdown; user content is always shown literally
// so a user cannot inject rendered markup through their own input.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"greyhound-backend/internal/models"
)

const DefaultStyle = "dark"

// Terminal renders messages for an ANSI terminal.
type Terminal struct {
	md *glamour.TermRenderer
}

// NewTerminal builds a renderer for a glamour standard style ("dark",
// "light", "notty", ...) wrapping at width columns.
func NewTerminal(style string, width int) (*Terminal, error) {
	if style == "" {
		style = DefaultStyle
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Terminal{md: md}, nil
}

// Markdown renders arbitrary markdown, falling back to the raw text.
func (t *Terminal) Markdown(text string) string {
	out, err := t.md.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

// Message renders one turn's body.
func (t *Terminal) Message(m models.Message) string {
	if m.Role == models.RoleAssistant {
		return t.Markdown(m.Content)
	}
	return "> " + m.Content
}
