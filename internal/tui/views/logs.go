package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/model"
	"github.com/gajare/accident-logs/internal/tui"
)

// RefreshRequestMsg is sent when the user asks for a list refresh.
type RefreshRequestMsg struct{}

// OpenFilterMsg is sent when the user opens the filter form.
type OpenFilterMsg struct{}

// NewLogMsg is sent when the user opens the create form.
type NewLogMsg struct{}

// EditLogMsg is sent when the user opens the edit form for a record.
type EditLogMsg struct {
	ID int
}

// DeleteRequestMsg is sent when the user asks to delete a record. The
// actual request is only issued after explicit confirmation.
type DeleteRequestMsg struct {
	ID      int
	Summary string
}

// LogsModel is the view model for the accident-log list.
type LogsModel struct {
	logs    []model.AccidentLog
	fetched bool
	filters model.FilterCriteria
	cursor  int
	width   int
	height  int
}

// NewLogsModel creates the list view.
func NewLogsModel(width, height int) LogsModel {
	return LogsModel{width: width, height: height}
}

// SetLogs replaces the displayed list with a fresh fetch result.
func (m *LogsModel) SetLogs(logs []model.AccidentLog, filters model.FilterCriteria) {
	m.logs = logs
	m.filters = filters
	m.fetched = true
	if m.cursor >= len(logs) {
		m.cursor = 0
	}
}

// Selected returns the record under the cursor, or false when the list is
// empty.
func (m LogsModel) Selected() (model.AccidentLog, bool) {
	if len(m.logs) == 0 || m.cursor >= len(m.logs) {
		return model.AccidentLog{}, false
	}
	return m.logs[m.cursor], true
}

// Update handles messages for the list view.
func (m LogsModel) Update(msg tea.Msg) (LogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case tui.KeyDown, "j":
			if m.cursor < len(m.logs)-1 {
				m.cursor++
			}
		case "r":
			return m, func() tea.Msg { return RefreshRequestMsg{} }
		case "f":
			return m, func() tea.Msg { return OpenFilterMsg{} }
		case "n":
			return m, func() tea.Msg { return NewLogMsg{} }
		case "e", tui.KeyEnter:
			if rec, ok := m.Selected(); ok {
				id := rec.ID
				return m, func() tea.Msg { return EditLogMsg{ID: id} }
			}
		case "d":
			if rec, ok := m.Selected(); ok {
				id := rec.ID
				summary := fmt.Sprintf("Log #%d (%s, %s)", rec.ID, rec.Date, rec.InvolvedName)
				return m, func() tea.Msg { return DeleteRequestMsg{ID: id, Summary: summary} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the list view. refreshLabel is the presenter-owned label for
// the refresh control.
func (m LogsModel) View(refreshLabel string) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Accident Logs"))
	b.WriteString("  ")
	b.WriteString(tui.DimStyle.Render(m.filters.Describe()))
	b.WriteString("\n\n")

	switch {
	case !m.fetched:
		b.WriteString(tui.DimStyle.Render("Press r to fetch accident logs."))
		b.WriteString("\n")
	case len(m.logs) == 0:
		b.WriteString("No accident logs found")
		b.WriteString("\n")
	default:
		for i, rec := range m.logs {
			// Pad severity before styling so ANSI codes don't skew columns.
			severity := tui.SeverityStyle(rec.SeverityLabel()).Render(fmt.Sprintf("%-9s", rec.SeverityLabel()))
			line := fmt.Sprintf("#%-4d %s %5s  %s %s (%s)",
				rec.ID, rec.Date, rec.TimeLabel(), severity,
				rec.InvolvedName, rec.InvolvedCompany)
			if i == m.cursor {
				line = tui.SelectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(refreshLabel))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("r: refresh  f: filter  n: new  e/enter: edit  d: delete  ctrl+c: quit"))

	return b.String()
}
