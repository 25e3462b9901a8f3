// Package ui implements the Bubble Tea chat interface for the advisor.
package ui

import (
	"context"
	"strings"

	"knowli_cli/chat"
	"knowli_cli/ui/styles"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	headerTitle = "💄 KnowLi Beauty Advisor"
	inputHeight = 3
)

// replyDoneMsg signals that a submit cycle finished (success or fallback).
type replyDoneMsg struct{}

// Model represents the Bubble Tea application state
type Model struct {
	session *chat.Session

	input    textarea.Model
	viewport viewport.Model
	spin     spinner.Model

	width   int
	height  int
	ready   bool
	waiting bool
}

// NewModel creates a new Bubble Tea model over a chat session.
func NewModel(session *chat.Session) Model {
	input := textarea.New()
	input.Placeholder = "Tell me about your beauty needs..."
	input.SetHeight(1)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.SpinnerStyle

	return Model{
		session:  session,
		input:    input,
		viewport: viewport.New(),
		spin:     spin,
	}
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header and status take one line each; the input box adds borders.
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - inputHeight - 4)
		m.input.SetWidth(msg.Width - 2)
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.waiting {
			// The submit goroutine appends messages while we wait; the
			// spinner tick doubles as the transcript refresh.
			m.refreshTranscript()
		}
		return m, cmd

	case replyDoneMsg:
		m.waiting = false
		m.refreshTranscript()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+n":
		if !m.waiting {
			m.session.Reset()
			m.refreshTranscript()
		}
		return m, nil

	case "enter":
		if m.waiting {
			return m, nil
		}
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.input.Reset()
		m.waiting = true
		return m, submitCmd(m.session, text)

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submitCmd runs one full submit cycle off the UI goroutine. The session's
// own in-flight guard makes a bypassed waiting flag harmless.
func submitCmd(session *chat.Session, text string) tea.Cmd {
	return func() tea.Msg {
		session.Submit(context.Background(), text)
		return replyDoneMsg{}
	}
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(Transcript(m.session.Messages(), m.viewport.Width()))
	m.viewport.GotoBottom()
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("Initializing...")
		v.AltScreen = true
		return v
	}

	header := styles.TitleStyle.Render(headerTitle)

	status := styles.TextMutedStyle.Render("enter send • ctrl+n new conversation • ctrl+c quit")
	if m.waiting {
		status = m.spin.View() + styles.TextMutedStyle.Render(" Thinking...")
	}

	input := styles.InputStyle.Width(m.width - 2).Render(m.input.View())

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		status,
		input,
	))
	v.AltScreen = true
	return v
}
