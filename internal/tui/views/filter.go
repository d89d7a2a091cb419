package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/model"
	"github.com/gajare/accident-logs/internal/tui"
)

// ApplyFilterMsg is sent when the user applies (or clears) filter criteria.
type ApplyFilterMsg struct {
	Criteria model.FilterCriteria
}

// CancelFilterMsg is sent when the user leaves the filter form unchanged.
type CancelFilterMsg struct{}

// filter form field indices
const (
	filterFrom = iota
	filterTo
	filterSeverity
	filterCompany
	filterFieldCount
)

var filterLabels = [filterFieldCount]string{"From date", "To date", "Severity", "Company"}

// FilterModel is the view model for the filter criteria form.
type FilterModel struct {
	inputs [filterFieldCount]textinput.Model
	focus  int
	width  int
	height int
}

// NewFilterModel creates the filter form pre-filled with the active
// criteria.
func NewFilterModel(criteria model.FilterCriteria, width, height int) FilterModel {
	m := FilterModel{width: width, height: height}

	placeholders := [filterFieldCount]string{"2024-01-01", "2024-01-31", "high", "Acme"}
	values := [filterFieldCount]string{criteria.FromDate, criteria.ToDate, criteria.Severity, criteria.Company}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 30
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[filterFrom].Focus()

	return m
}

// Criteria builds the filter value from the form fields; blank fields are
// left out of the query.
func (m FilterModel) Criteria() model.FilterCriteria {
	return model.FilterCriteria{
		FromDate: strings.TrimSpace(m.inputs[filterFrom].Value()),
		ToDate:   strings.TrimSpace(m.inputs[filterTo].Value()),
		Severity: strings.TrimSpace(m.inputs[filterSeverity].Value()),
		Company:  strings.TrimSpace(m.inputs[filterCompany].Value()),
	}
}

// Update handles messages for the filter form.
func (m FilterModel) Update(msg tea.Msg) (FilterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return CancelFilterMsg{} }

		case tui.KeyEnter:
			criteria := m.Criteria()
			return m, func() tea.Msg { return ApplyFilterMsg{Criteria: criteria} }

		case "ctrl+r":
			// Clear action: apply empty criteria.
			return m, func() tea.Msg { return ApplyFilterMsg{} }

		case tui.KeyTab, tui.KeyDown:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % filterFieldCount
			m.inputs[m.focus].Focus()
			return m, nil

		case "shift+tab", tui.KeyUp:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus - 1 + filterFieldCount) % filterFieldCount
			m.inputs[m.focus].Focus()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the filter form.
func (m FilterModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Filter Accident Logs"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := tui.LabelStyle
		if i == m.focus {
			label = tui.FocusedLabelStyle
		}
		b.WriteString(label.Width(10).Render(filterLabels[i]))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: apply  Ctrl+R: clear  Esc: cancel  Tab: next field"))

	width := m.width - 4
	if width > 60 {
		width = 60
	}
	return tui.BoxStyle.Width(width).Render(b.String())
}
