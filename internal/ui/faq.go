package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greyhound-backend/internal/content"
	"greyhound-backend/internal/models"
	"greyhound-backend/internal/render"
)

const FAQ_HELP = "↑/↓: move • enter: expand/collapse • q: quit"

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().PaddingLeft(4)
)

// FAQModel is a keyboard-driven accordion: moving the cursor never changes
// which entry is expanded, and expanding one collapses any other.
type FAQModel struct {
	items     []models.FAQItem
	renderer  *render.Terminal
	accordion content.Accordion
	cursor    int
}

func NewFAQModel(items []models.FAQItem, renderer *render.Terminal) FAQModel {
	return FAQModel{items: items, renderer: renderer}
}

func (m FAQModel) Init() tea.Cmd {
	return nil
}

func (m FAQModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.items) > 0 {
			m.accordion.Toggle(m.cursor)
		}
	}
	return m, nil
}

func (m FAQModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Frequently Asked Questions"))
	b.WriteString("\n")

	for i, item := range m.items {
		marker := "▸"
		if m.accordion.IsOpen(i) {
			marker = "▾"
		}
		line := marker + " " + questionStyle.Render(item.Question)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if m.accordion.IsOpen(i) {
			b.WriteString(answerStyle.Render(m.renderer.Markdown(item.Answer)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(FAQ_HELP))
	return b.String()
}
