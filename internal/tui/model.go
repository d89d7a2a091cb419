// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/google/uuid"

	"github.com/gajare/accident-logs/internal/config"
	"github.com/gajare/accident-logs/internal/model"
)

// ViewState represents the current state of the TUI.
type ViewState int

const (
	StateAuth    ViewState = iota // token missing or being exchanged
	StateList                     // accident-log list with active filters
	StateFilter                   // filter criteria form
	StateForm                     // create/edit form
	StateConfirm                  // delete confirmation
)

// Control identifiers for per-control loading states.
const (
	ControlExchange = "exchange"
	ControlRefresh  = "refresh"
	ControlSubmit   = "submit"
	ControlDelete   = "delete"
)

// Model is the shared application state behind every view.
type Model struct {
	State ViewState

	// Configuration
	Cfg *config.Config

	// Session state
	TokenPresent bool

	// Displayed data. Logs always reflect the last successful fetch;
	// a failed refresh never clears them.
	Logs       []model.AccidentLog
	Fetched    bool // at least one fetch has succeeded
	Filters    model.FilterCriteria
	Generation uuid.UUID // tag of the most recently issued fetch

	// Presenter state
	Notices *NoticeStack
	Loading *Loading

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a Model with the given configuration.
func NewModel(cfg *config.Config) *Model {
	return &Model{
		State:   StateAuth,
		Cfg:     cfg,
		Notices: NewNoticeStack(),
		Loading: NewLoading(),
		Width:   100,
		Height:  30,
	}
}

// NextGeneration issues a fresh fetch tag. Responses carrying an older tag
// are stale and get discarded, so the list always reflects the latest
// request rather than whichever response lands last.
func (m *Model) NextGeneration() uuid.UUID {
	m.Generation = uuid.New()
	return m.Generation
}

// SessionLabel returns the user-facing session status line.
func (m *Model) SessionLabel() string {
	if m.TokenPresent {
		return "Token available"
	}
	return "No token"
}
