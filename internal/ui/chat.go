package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greyhound-backend/internal/client"
	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
	"greyhound-backend/internal/render"
)

const (
	CHAT_INPUT_PLACEHOLDER = "Ask about greyhound adoption..."
	CHAT_TYPING_INDICATOR  = content.AssistantName + " is typing..."
	CHAT_SUGGESTION_HINT   = "tab: use a sample question"
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true)
)

// replyMsg carries the outcome of one relay call back into Update.
type replyMsg struct {
	reply string
	err   error
}

type ChatOptions struct {
	Title    string
	Widget   *client.Widget
	Renderer *render.Terminal
	Context  context.Context
}

// ChatModel drives a client.Widget from the terminal.
type ChatModel struct {
	widget   *client.Widget
	renderer *render.Terminal
	ctx      context.Context

	textInput  textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	title      string
	suggestion int
}

func NewChatModel(opts ChatOptions) ChatModel {
	ti := textinput.New()
	ti.Placeholder = CHAT_INPUT_PLACEHOLDER
	ti.Focus()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	title := opts.Title
	if title == "" {
		title = content.AssistantName
	}

	m := ChatModel{
		widget:     opts.Widget,
		renderer:   opts.Renderer,
		ctx:        ctx,
		textInput:  ti,
		viewport:   viewport.New(0, 0),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		title:      title,
		suggestion: -1,
	}
	m.updateViewport()
	return m
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnableMouseCellMotion)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		titleLines := (len(m.title) / max(msg.Width, 1)) + 1
		m.viewport = viewport.New(msg.Width, max(msg.Height-(4+titleLines), 0))
		m.updateViewport()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				m.viewport.ScrollDown(1)
			}
		}

	case replyMsg:
		m.widget.Finish(msg.reply, msg.err)
		m.textInput.Focus()
		m.updateViewport()

	case spinner.TickMsg:
		if m.widget.IsSending() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.nextSuggestion()
			return m, nil
		case tea.KeyEnter:
			m.widget.SetInput(m.textInput.Value())
			conversation, ok := m.widget.Begin()
			if !ok {
				return m, nil
			}
			m.textInput.SetValue("")
			m.textInput.Blur()
			m.suggestion = -1
			m.updateViewport()
			return m, tea.Batch(m.relay(conversation), m.spinner.Tick)
		}
	}

	if !m.widget.IsSending() {
		m.textInput, _ = m.textInput.Update(msg)
	}

	return m, cmd
}

// relay runs the network call off the update loop.
func (m ChatModel) relay(conversation []models.Message) tea.Cmd {
	widget, ctx := m.widget, m.ctx
	return func() tea.Msg {
		reply, err := widget.Relay(ctx, conversation)
		return replyMsg{reply: reply, err: err}
	}
}

// nextSuggestion cycles the input through the sample questions while they
// are on offer.
func (m *ChatModel) nextSuggestion() {
	questions := m.widget.Suggestions()
	if len(questions) == 0 || m.widget.IsSending() {
		return
	}
	m.suggestion = (m.suggestion + 1) % len(questions)
	if !m.widget.AskSuggestion(m.suggestion) {
		return
	}
	m.textInput.SetValue(m.widget.Input())
	m.textInput.CursorEnd()
}

func (m *ChatModel) updateViewport() {
	var blocks []string
	for _, msg := range m.widget.Messages() {
		switch msg.Role {
		case models.RoleAssistant:
			style := botStyle
			if msg.IsError {
				style = errorStyle
			}
			blocks = append(blocks, style.Render(m.renderer.Message(msg)))
		case models.RoleUser:
			blocks = append(blocks, userStyle.Render(m.renderer.Message(msg)))
		}
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.viewport.GotoBottom()
}

func (m ChatModel) suggestionsView() string {
	questions := m.widget.Suggestions()
	if len(questions) == 0 {
		return ""
	}
	lines := make([]string, 0, len(questions)+1)
	lines = append(lines, CHAT_SUGGESTION_HINT)
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, q))
	}
	return hintStyle.Render(strings.Join(lines, "\n"))
}

func (m ChatModel) View() string {
	input := m.textInput.View()
	if m.widget.IsSending() {
		input = m.spinner.View() + " " + CHAT_TYPING_INDICATOR
	}

	parts := []string{
		titleStyle.Width(m.viewport.Width).Render(m.title),
		m.viewport.View(),
	}
	if s := m.suggestionsView(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, inputStyle.Width(m.viewport.Width).Render(input))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
