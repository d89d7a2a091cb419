// Package app provides the main TUI application that wires all views
// together.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gajare/accident-logs/internal/config"
	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/procore"
	"github.com/gajare/accident-logs/internal/session"
	"github.com/gajare/accident-logs/internal/tui"
	"github.com/gajare/accident-logs/internal/tui/commands"
	"github.com/gajare/accident-logs/internal/tui/views"
)

// Idle labels for the loading-tracked controls.
var idleLabels = map[string]string{
	tui.ControlExchange: "[ Get Access Token ]",
	tui.ControlRefresh:  "[ Refresh Logs ]",
	tui.ControlSubmit:   "[ Submit ]",
	tui.ControlDelete:   "[ Delete ]",
}

// App is the main TUI application that wires all views together.
type App struct {
	model  *tui.Model
	client *procore.Client
	store  *session.Store
	logger *log.Logger

	// View models
	authView    views.AuthModel
	logsView    views.LogsModel
	filterView  views.FilterModel
	formView    views.FormModel
	confirmView views.ConfirmModel

	// Presenter-owned control labels, swapped while busy and restored
	// exactly on completion.
	labels map[string]string
}

// New creates the App with the given collaborators. store and logger may be
// nil in tests; the client then carries session state alone.
func New(cfg *config.Config, client *procore.Client, store *session.Store, logger *log.Logger) *App {
	model := tui.NewModel(cfg)

	labels := make(map[string]string, len(idleLabels))
	for k, v := range idleLabels {
		labels[k] = v
	}

	return &App{
		model:    model,
		client:   client,
		store:    store,
		logger:   logger,
		authView: views.NewAuthModel(model.Width, model.Height),
		logsView: views.NewLogsModel(model.Width, model.Height),
		labels:   labels,
	}
}

// Model exposes the shared state for tests.
func (a *App) Model() *tui.Model { return a.model }

// Label returns the current display label of a loading-tracked control.
func (a *App) Label(control string) string { return a.labels[control] }

// Init loads the persisted token; everything else waits for its result.
func (a *App) Init() tea.Cmd {
	a.authView.SetSessionLabel(a.model.SessionLabel())
	if a.store == nil {
		return a.authView.Init()
	}
	return tea.Batch(a.authView.Init(), commands.LoadTokenCmd(a.store, a.client))
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a.delegate(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			return a, tea.Quit
		}
		return a.delegate(msg)

	// ---- session ----

	case tui.TokenLoadedMsg:
		a.model.TokenPresent = msg.Token != ""
		a.authView.SetSessionLabel(a.model.SessionLabel())
		if !a.model.TokenPresent {
			return a, nil
		}
		// Persisted session found: go straight to the list and fetch.
		a.model.State = tui.StateList
		return a, a.fetchCmd()

	case views.OpenAuthRequestMsg:
		return a, commands.OpenAuthorizeCmd(a.model.Cfg, a.logger)

	case tui.AuthOpenedMsg:
		if msg.Err != nil {
			return a, a.model.Notices.Error("Could not open the authorization page: " + msg.Err.Error())
		}
		return a, a.model.Notices.Success("Authorization page opened; paste the code here when ready")

	case views.ExchangeRequestMsg:
		if a.model.Loading.Busy(tui.ControlExchange) {
			return a, nil
		}
		a.startLoading(tui.ControlExchange)
		return a, commands.ExchangeCodeCmd(a.client, a.store, a.logger, msg.Code)

	case tui.TokenExchangedMsg:
		a.stopLoading(tui.ControlExchange)
		a.model.TokenPresent = true
		a.authView.ClearCode()
		a.authView.SetSessionLabel(a.model.SessionLabel())
		a.model.State = tui.StateList
		cmds := []tea.Cmd{a.model.Notices.Success("Access token stored")}
		if a.model.Cfg.Behavior.FetchOnAuth {
			cmds = append(cmds, a.fetchCmd())
		}
		return a, tea.Batch(cmds...)

	// ---- queries ----

	case views.RefreshRequestMsg:
		if a.model.Loading.Busy(tui.ControlRefresh) {
			return a, nil
		}
		return a, a.fetchCmd()

	case tui.LogsFetchedMsg:
		if msg.Generation != a.model.Generation {
			// A newer fetch is in flight or already landed; this
			// response is stale.
			return a, nil
		}
		a.stopLoading(tui.ControlRefresh)
		a.model.Logs = msg.Logs
		a.model.Fetched = true
		a.model.Filters = msg.Criteria
		a.logsView.SetLogs(msg.Logs, msg.Criteria)
		return a, nil

	case views.OpenFilterMsg:
		a.filterView = views.NewFilterModel(a.model.Filters, a.model.Width, a.model.Height)
		a.model.State = tui.StateFilter
		return a, nil

	case views.ApplyFilterMsg:
		a.model.Filters = msg.Criteria
		a.model.State = tui.StateList
		return a, a.fetchCmd()

	case views.CancelFilterMsg:
		a.model.State = tui.StateList
		return a, nil

	// ---- mutations ----

	case views.NewLogMsg:
		a.formView = views.NewFormModel(a.model.Width, a.model.Height)
		a.model.State = tui.StateForm
		return a, nil

	case views.EditLogMsg:
		return a, commands.GetLogCmd(a.client, msg.ID)

	case tui.LogLoadedMsg:
		a.formView = views.NewEditFormModel(msg.Log, a.model.Width, a.model.Height)
		a.model.State = tui.StateForm
		return a, nil

	case views.SubmitDraftMsg:
		if a.model.Loading.Busy(tui.ControlSubmit) {
			return a, nil
		}
		a.startLoading(tui.ControlSubmit)
		if msg.ID == 0 {
			return a, commands.CreateLogCmd(a.client, a.logger, msg.Draft)
		}
		return a, commands.UpdateLogCmd(a.client, a.logger, msg.ID, msg.Draft)

	case tui.LogCreatedMsg:
		a.stopLoading(tui.ControlSubmit)
		a.model.State = tui.StateList
		return a, tea.Batch(
			a.model.Notices.Success("Log created successfully"),
			a.fetchCmd(),
		)

	case tui.LogUpdatedMsg:
		a.stopLoading(tui.ControlSubmit)
		a.model.State = tui.StateList
		return a, tea.Batch(
			a.model.Notices.Success("Log updated successfully"),
			a.fetchCmd(),
		)

	case views.CancelFormMsg:
		a.model.State = tui.StateList
		return a, nil

	case views.DeleteRequestMsg:
		a.confirmView = views.NewConfirmModel(msg.ID, msg.Summary, a.model.Width, a.model.Height)
		a.model.State = tui.StateConfirm
		return a, nil

	case views.ConfirmDeleteMsg:
		a.model.State = tui.StateList
		a.startLoading(tui.ControlDelete)
		return a, commands.DeleteLogCmd(a.client, a.logger, msg.ID)

	case views.CancelDeleteMsg:
		a.model.State = tui.StateList
		return a, nil

	case tui.LogDeletedMsg:
		a.stopLoading(tui.ControlDelete)
		return a, tea.Batch(
			a.model.Notices.Success("Log deleted successfully"),
			a.fetchCmd(),
		)

	// ---- failures / presenter ----

	case tui.RequestFailedMsg:
		if msg.Control != "" {
			a.stopLoading(msg.Control)
		}
		return a, a.model.Notices.Error(noticeText(msg.Err))

	case tui.NoticeExpiredMsg:
		a.model.Notices.Expire(msg.ID)
		return a, nil
	}

	return a.delegate(msg)
}

// delegate routes a message to the active view.
func (a *App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.model.State {
	case tui.StateAuth:
		a.authView, cmd = a.authView.Update(msg)
	case tui.StateList:
		a.logsView, cmd = a.logsView.Update(msg)
	case tui.StateFilter:
		a.filterView, cmd = a.filterView.Update(msg)
	case tui.StateForm:
		a.formView, cmd = a.formView.Update(msg)
	case tui.StateConfirm:
		a.confirmView, cmd = a.confirmView.Update(msg)
	}
	return a, cmd
}

// fetchCmd starts a list fetch with the currently active filters, tagging
// it with a fresh generation.
func (a *App) fetchCmd() tea.Cmd {
	a.startLoading(tui.ControlRefresh)
	gen := a.model.NextGeneration()
	return commands.FetchLogsCmd(a.client, a.logger, a.model.Filters, gen)
}

func (a *App) startLoading(control string) {
	a.labels[control] = a.model.Loading.Start(control, a.labels[control])
}

func (a *App) stopLoading(control string) {
	a.labels[control] = a.model.Loading.Stop(control, a.labels[control])
}

// View renders the active view plus the notification stack and status bar.
func (a *App) View() string {
	var content string
	switch a.model.State {
	case tui.StateAuth:
		content = a.authView.View(a.labels[tui.ControlExchange])
	case tui.StateList:
		content = a.logsView.View(a.labels[tui.ControlRefresh])
	case tui.StateFilter:
		content = a.filterView.View()
	case tui.StateForm:
		content = a.formView.View(a.labels[tui.ControlSubmit])
	case tui.StateConfirm:
		content = a.confirmView.View()
	}

	out := ""
	if notices := a.model.Notices.View(); notices != "" {
		out += notices + "\n"
	}
	out += content + "\n"
	out += tui.StatusBarStyle.Render(a.statusLine())
	return out
}

func (a *App) statusLine() string {
	line := a.model.SessionLabel()
	if a.model.Fetched {
		line += "  |  " + a.model.Filters.Describe()
	}
	return line
}

// noticeText maps client errors onto user-facing notification text.
// Backend error messages pass through verbatim; transport failures get a
// generic message since their details belong in the audit log.
func noticeText(err error) string {
	var terr *procore.TransportError
	if errors.As(err, &terr) {
		return "Request failed: backend unreachable or returned an unexpected response"
	}
	return err.Error()
}
