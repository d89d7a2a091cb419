// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/google/uuid"

	"github.com/gajare/accident-logs/internal/model"
)

// ============================================================================
// Session Messages
// ============================================================================

// TokenLoadedMsg carries the persisted token read at startup ("" when none).
type TokenLoadedMsg struct {
	Token string
}

// AuthOpenedMsg signals that the provider authorization URL was opened in
// the browser (or that opening it failed).
type AuthOpenedMsg struct {
	Err error
}

// TokenExchangedMsg signals a successful code-for-token exchange.
type TokenExchangedMsg struct {
	Token string
}

// ============================================================================
// Query Messages
// ============================================================================

// LogsFetchedMsg carries a fetched log list. Generation identifies the
// request that produced it; stale generations are discarded.
type LogsFetchedMsg struct {
	Generation uuid.UUID
	Logs       []model.AccidentLog
	Criteria   model.FilterCriteria
}

// LogLoadedMsg carries a single record fetched to populate the edit form.
type LogLoadedMsg struct {
	Log model.AccidentLog
}

// ============================================================================
// Mutation Messages
// ============================================================================

// LogCreatedMsg signals a successful create.
type LogCreatedMsg struct {
	Log model.AccidentLog
}

// LogUpdatedMsg signals a successful update.
type LogUpdatedMsg struct {
	ID int
}

// LogDeletedMsg signals a successful delete.
type LogDeletedMsg struct {
	ID int
}

// ============================================================================
// Failure / Utility Messages
// ============================================================================

// RequestFailedMsg funnels every failed asynchronous operation into the
// notification presenter. Control names the loading indicator to clear.
type RequestFailedMsg struct {
	Control string
	Err     error
}

// NoticeExpiredMsg dismisses a single transient notification.
type NoticeExpiredMsg struct {
	ID uuid.UUID
}
