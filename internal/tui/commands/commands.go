// Package commands provides Bubble Tea commands for TUI operations.
// Every command runs one client call off the event loop and funnels the
// outcome back as a typed message; failures all map to RequestFailedMsg.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/gajare/accident-logs/internal/browser"
	"github.com/gajare/accident-logs/internal/config"
	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/model"
	"github.com/gajare/accident-logs/internal/procore"
	"github.com/gajare/accident-logs/internal/session"
	"github.com/gajare/accident-logs/internal/tui"
)

// LoadTokenCmd reads the persisted token from the session store at startup.
func LoadTokenCmd(store *session.Store, client *procore.Client) tea.Cmd {
	return func() tea.Msg {
		token, err := store.LoadToken()
		if err != nil {
			return tui.RequestFailedMsg{Err: err}
		}
		client.SetToken(token)
		return tui.TokenLoadedMsg{Token: token}
	}
}

// OpenAuthorizeCmd opens the provider authorization URL in the browser.
func OpenAuthorizeCmd(cfg *config.Config, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		url := procore.AuthorizeURL(cfg.OAuth.AuthorizeURL, cfg.OAuth.ClientID, cfg.OAuth.RedirectURI)
		err := browser.Open(url)
		if err == nil {
			audit(logger, log.LogEvent{Event: log.EventAuthOpened})
		}
		return tui.AuthOpenedMsg{Err: err}
	}
}

// ExchangeCodeCmd trades the pasted authorization code for a bearer token
// and persists it.
func ExchangeCodeCmd(client *procore.Client, store *session.Store, logger *log.Logger, code string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.ExchangeCode(context.Background(), code)
		if err != nil {
			audit(logger, log.LogEvent{Event: log.EventRequestFailed, Operation: "exchange", Error: err.Error()})
			return tui.RequestFailedMsg{Control: tui.ControlExchange, Err: err}
		}
		if err := store.SaveToken(token); err != nil {
			return tui.RequestFailedMsg{Control: tui.ControlExchange, Err: err}
		}
		audit(logger, log.LogEvent{Event: log.EventTokenExchanged})
		return tui.TokenExchangedMsg{Token: token}
	}
}

// FetchLogsCmd fetches the log list with the given criteria. generation
// tags the response so the app can discard it if a newer fetch was issued
// in the meantime.
func FetchLogsCmd(client *procore.Client, logger *log.Logger, criteria model.FilterCriteria, generation uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		logs, err := client.FetchLogs(context.Background(), criteria)
		if err != nil {
			audit(logger, log.LogEvent{Event: log.EventRequestFailed, Operation: "fetch", Error: err.Error()})
			return tui.RequestFailedMsg{Control: tui.ControlRefresh, Err: err}
		}
		audit(logger, log.LogEvent{Event: log.EventLogsFetched, Count: len(logs), Filters: criteria.Describe()})
		return tui.LogsFetchedMsg{Generation: generation, Logs: logs, Criteria: criteria}
	}
}

// GetLogCmd fetches a single record to populate the edit form.
func GetLogCmd(client *procore.Client, id int) tea.Cmd {
	return func() tea.Msg {
		rec, err := client.GetLog(context.Background(), id)
		if err != nil {
			return tui.RequestFailedMsg{Err: err}
		}
		return tui.LogLoadedMsg{Log: rec}
	}
}

// CreateLogCmd submits a new record.
func CreateLogCmd(client *procore.Client, logger *log.Logger, draft model.LogDraft) tea.Cmd {
	return func() tea.Msg {
		created, err := client.CreateLog(context.Background(), draft)
		if err != nil {
			audit(logger, log.LogEvent{Event: log.EventRequestFailed, Operation: "create", Error: err.Error()})
			return tui.RequestFailedMsg{Control: tui.ControlSubmit, Err: err}
		}
		audit(logger, log.LogEvent{Event: log.EventLogCreated, LogID: created.ID})
		return tui.LogCreatedMsg{Log: created}
	}
}

// UpdateLogCmd submits changes to an existing record.
func UpdateLogCmd(client *procore.Client, logger *log.Logger, id int, draft model.LogDraft) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpdateLog(context.Background(), id, draft); err != nil {
			audit(logger, log.LogEvent{Event: log.EventRequestFailed, Operation: "update", Error: err.Error()})
			return tui.RequestFailedMsg{Control: tui.ControlSubmit, Err: err}
		}
		audit(logger, log.LogEvent{Event: log.EventLogUpdated, LogID: id})
		return tui.LogUpdatedMsg{ID: id}
	}
}

// DeleteLogCmd deletes a record. Callers confirm with the user first.
func DeleteLogCmd(client *procore.Client, logger *log.Logger, id int) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteLog(context.Background(), id); err != nil {
			audit(logger, log.LogEvent{Event: log.EventRequestFailed, Operation: "delete", Error: err.Error()})
			return tui.RequestFailedMsg{Control: tui.ControlDelete, Err: err}
		}
		audit(logger, log.LogEvent{Event: log.EventLogDeleted, LogID: id})
		return tui.LogDeletedMsg{ID: id}
	}
}

// audit best-effort appends an event; the UI never fails on audit errors.
func audit(logger *log.Logger, event log.LogEvent) {
	if logger == nil {
		return
	}
	_ = logger.Append(event)
}
