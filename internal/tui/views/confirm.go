package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/tui"
)

// ConfirmDeleteMsg is sent when the user explicitly confirms a delete.
type ConfirmDeleteMsg struct {
	ID int
}

// CancelDeleteMsg is sent when the user backs out of a delete.
type CancelDeleteMsg struct{}

// ConfirmModel is the view model for the delete confirmation prompt.
type ConfirmModel struct {
	id      int
	summary string
	width   int
	height  int
}

// NewConfirmModel creates a confirmation prompt for the given record.
func NewConfirmModel(id int, summary string, width, height int) ConfirmModel {
	return ConfirmModel{id: id, summary: summary, width: width, height: height}
}

// Update handles messages for the confirmation prompt.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			id := m.id
			return m, func() tea.Msg { return ConfirmDeleteMsg{ID: id} }
		case "n", "N", tui.KeyEsc:
			return m, func() tea.Msg { return CancelDeleteMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the confirmation prompt.
func (m ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(tui.WarningStyle.Render("Delete " + m.summary + "?"))
	b.WriteString("\n\n")
	b.WriteString("This action cannot be undone.\n\n")
	b.WriteString(tui.DimStyle.Render("y: delete  n/esc: cancel"))

	width := m.width - 4
	if width > 56 {
		width = 56
	}
	return tui.BoxStyle.Width(width).Render(b.String())
}
