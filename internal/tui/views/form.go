package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/model"
	"github.com/gajare/accident-logs/internal/tui"
)

// SubmitDraftMsg is sent when the user submits the create/edit form.
// ID is zero for a create and the record id for an update.
type SubmitDraftMsg struct {
	ID    int
	Draft model.LogDraft
}

// CancelFormMsg is sent when the user leaves the form without submitting.
type CancelFormMsg struct{}

// form field indices
const (
	fieldDate = iota
	fieldHour
	fieldMinute
	fieldName
	fieldCompany
	fieldSeverity
	fieldLocation
	fieldComments
	formFieldCount
)

var formLabels = [formFieldCount]string{
	"Date *", "Hour", "Minute", "Involved name *", "Involved company *",
	"Severity", "Location", "Comments",
}

// FormModel is the view model for the create/edit form.
type FormModel struct {
	id     int // 0 = create
	inputs [formFieldCount]textinput.Model
	focus  int
	width  int
	height int
}

// NewFormModel creates an empty form for a new record.
func NewFormModel(width, height int) FormModel {
	m := FormModel{width: width, height: height}

	placeholders := [formFieldCount]string{
		"2024-01-15", "8", "30", "Jordan Price", "Acme Steel", "low", "North scaffold", "",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 300
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[fieldDate].Focus()

	return m
}

// NewEditFormModel creates a form pre-filled from an existing record.
func NewEditFormModel(rec model.AccidentLog, width, height int) FormModel {
	m := NewFormModel(width, height)
	m.id = rec.ID

	m.inputs[fieldDate].SetValue(rec.Date)
	m.inputs[fieldHour].SetValue(strconv.Itoa(rec.TimeHour))
	m.inputs[fieldMinute].SetValue(strconv.Itoa(rec.TimeMinute))
	m.inputs[fieldName].SetValue(rec.InvolvedName)
	m.inputs[fieldCompany].SetValue(rec.InvolvedCompany)
	m.inputs[fieldSeverity].SetValue(rec.Severity)
	m.inputs[fieldLocation].SetValue(rec.Location)
	m.inputs[fieldComments].SetValue(rec.Comments)

	return m
}

// Editing reports whether the form targets an existing record.
func (m FormModel) Editing() bool { return m.id != 0 }

// Draft builds the submission value from the form fields. Hour and minute
// parse as integers; the backend validates ranges.
func (m FormModel) Draft() model.LogDraft {
	hour, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldHour].Value()))
	minute, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldMinute].Value()))

	return model.LogDraft{
		Date:            strings.TrimSpace(m.inputs[fieldDate].Value()),
		TimeHour:        hour,
		TimeMinute:      minute,
		InvolvedName:    strings.TrimSpace(m.inputs[fieldName].Value()),
		InvolvedCompany: strings.TrimSpace(m.inputs[fieldCompany].Value()),
		Severity:        strings.TrimSpace(m.inputs[fieldSeverity].Value()),
		Location:        strings.TrimSpace(m.inputs[fieldLocation].Value()),
		Comments:        strings.TrimSpace(m.inputs[fieldComments].Value()),
	}
}

// Update handles messages for the form.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return CancelFormMsg{} }

		case tui.KeyEnter:
			id, draft := m.id, m.Draft()
			return m, func() tea.Msg { return SubmitDraftMsg{ID: id, Draft: draft} }

		case tui.KeyTab, tui.KeyDown:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % formFieldCount
			m.inputs[m.focus].Focus()
			return m, nil

		case "shift+tab", tui.KeyUp:
			m.inputs[m.focus].Blur()
			m.focus = (m.focus - 1 + formFieldCount) % formFieldCount
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

// View renders the form. submitLabel is the presenter-owned label for the
// submit control.
func (m FormModel) View(submitLabel string) string {
	var b strings.Builder

	title := "New Accident Log"
	if m.Editing() {
		title = "Edit Accident Log #" + strconv.Itoa(m.id)
	}
	b.WriteString(tui.TitleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := tui.LabelStyle
		if i == m.focus {
			label = tui.FocusedLabelStyle
		}
		b.WriteString(label.Width(19).Render(formLabels[i]))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(submitLabel))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: submit  Esc: cancel  Tab: next field   * required"))

	width := m.width - 4
	if width > 72 {
		width = 72
	}
	return tui.BoxStyle.Width(width).Render(b.String())
}
