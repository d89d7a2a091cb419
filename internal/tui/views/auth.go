// Package views provides TUI view components for the alog application.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/tui"
)

// OpenAuthRequestMsg is sent when the user asks for the authorization page.
type OpenAuthRequestMsg struct{}

// ExchangeRequestMsg is sent when the user submits an authorization code.
type ExchangeRequestMsg struct {
	Code string
}

// AuthModel is the view model for the authorization screen.
type AuthModel struct {
	codeInput    textinput.Model
	sessionLabel string
	width        int
	height       int
}

// NewAuthModel creates the authorization view.
func NewAuthModel(width, height int) AuthModel {
	ti := textinput.New()
	ti.Placeholder = "paste authorization code..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	return AuthModel{
		codeInput: ti,
		width:     width,
		height:    height,
	}
}

// Init returns the initial command for the authorization view.
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSessionLabel updates the displayed session status.
func (m *AuthModel) SetSessionLabel(label string) {
	m.sessionLabel = label
}

// ClearCode empties the code input, called after a successful exchange.
func (m *AuthModel) ClearCode() {
	m.codeInput.SetValue("")
}

// Update handles messages for the authorization view.
func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEnter:
			code := strings.TrimSpace(m.codeInput.Value())
			return m, func() tea.Msg { return ExchangeRequestMsg{Code: code} }
		case "ctrl+b":
			return m, func() tea.Msg { return OpenAuthRequestMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

// View renders the authorization view. exchangeLabel is the presenter-owned
// label for the exchange control, busy-decorated while a request is in
// flight.
func (m AuthModel) View(exchangeLabel string) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Accident Logs: Authorization"))
	b.WriteString("\n\n")

	status := m.sessionLabel
	if status == "Token available" {
		status = tui.SuccessStyle.Render(status)
	} else {
		status = tui.WarningStyle.Render(status)
	}
	b.WriteString("Session: " + status)
	b.WriteString("\n\n")

	b.WriteString("1. Open the authorization page and sign in (Ctrl+B)\n")
	b.WriteString("2. Copy the code shown after approval\n")
	b.WriteString("3. Paste it below and press Enter\n\n")

	b.WriteString(m.codeInput.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render(exchangeLabel))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Ctrl+B: open browser   Enter: exchange code   Ctrl+C: quit"))

	width := m.width - 4
	if width > 72 {
		width = 72
	}
	return tui.BoxStyle.Width(width).Render(b.String())
}
