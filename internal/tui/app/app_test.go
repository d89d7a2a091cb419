package app

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gajare/accident-logs/internal/config"
	"github.com/gajare/accident-logs/internal/model"
	"github.com/gajare/accident-logs/internal/procore"
	"github.com/gajare/accident-logs/internal/session"
	"github.com/gajare/accident-logs/internal/testutil"
	"github.com/gajare/accident-logs/internal/tui"
	"github.com/gajare/accident-logs/internal/tui/views"
)

// runCmd executes a command tree synchronously and feeds every resulting
// message back into the app, returning the messages seen. Commands that do
// not produce a message quickly, notice-expiry ticks mainly, are skipped
// rather than waited out.
func runCmd(t *testing.T, a *App, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := await(next)
		if !ok || msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		seen = append(seen, msg)
		_, follow := a.Update(msg)
		if follow != nil {
			queue = append(queue, follow)
		}
	}
	return seen
}

func await(cmd tea.Cmd) (tea.Msg, bool) {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg, true
	case <-time.After(time.Second):
		return nil, false
	}
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *testutil.StubProxy) {
	t.Helper()
	proxy := testutil.NewStubProxy(t)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Backend.BaseURL = proxy.Server.URL

	client := procore.NewClient(proxy.Server.URL, "", 0)
	store, err := session.NewStore(filepath.Join(t.TempDir(), "alog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(cfg, client, store, nil), proxy
}

func TestTokenAbsentAtStartupNoFetch(t *testing.T) {
	a, proxy := newTestApp(t, nil)

	_, cmd := a.Update(tui.TokenLoadedMsg{Token: ""})

	assert.Nil(t, cmd)
	assert.Equal(t, tui.StateAuth, a.Model().State)
	assert.Equal(t, "No token", a.Model().SessionLabel())
	assert.Zero(t, proxy.RequestCount())
}

func TestTokenPresentAtStartupFetchesUnfiltered(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, testutil.SampleLogs())

	_, cmd := a.Update(tui.TokenLoadedMsg{Token: "tok1"})
	require.NotNil(t, cmd)
	runCmd(t, a, cmd)

	assert.Equal(t, tui.StateList, a.Model().State)
	assert.True(t, a.Model().Fetched)
	assert.Len(t, a.Model().Logs, 2)
	assert.Equal(t, "/api/accident-logs", proxy.LastRequest().URL.Path)
}

func TestExchangeSuccessStoresTokenAndFetches(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	proxy.HandleJSON(http.MethodPost, "/api/auth/token", http.StatusOK,
		map[string]string{"access_token": "tok1"})
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, testutil.SampleLogs())

	_, cmd := a.Update(views.ExchangeRequestMsg{Code: "ABC123"})
	require.NotNil(t, cmd)
	assert.Contains(t, a.Label(tui.ControlExchange), "Loading...")
	runCmd(t, a, cmd)

	assert.True(t, a.Model().TokenPresent)
	assert.Equal(t, "Token available", a.Model().SessionLabel())
	assert.Equal(t, "[ Get Access Token ]", a.Label(tui.ControlExchange))
	assert.Equal(t, tui.StateList, a.Model().State)
	// Default policy fetches right after the exchange.
	assert.True(t, a.Model().Fetched)
}

func TestExchangeSuccessWithoutEagerFetch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Behavior.FetchOnAuth = false
	a, proxy := newTestApp(t, cfg)
	proxy.HandleJSON(http.MethodPost, "/api/auth/token", http.StatusOK,
		map[string]string{"access_token": "tok1"})

	_, cmd := a.Update(views.ExchangeRequestMsg{Code: "ABC123"})
	runCmd(t, a, cmd)

	assert.True(t, a.Model().TokenPresent)
	assert.False(t, a.Model().Fetched)
	assert.Equal(t, 1, proxy.RequestCount(), "only the token exchange should hit the backend")
}

func TestExchangePersistsToken(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	proxy.HandleJSON(http.MethodPost, "/api/auth/token", http.StatusOK,
		map[string]string{"access_token": "tok1"})
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, []model.AccidentLog{})

	_, cmd := a.Update(views.ExchangeRequestMsg{Code: "ABC123"})
	runCmd(t, a, cmd)

	saved, err := a.store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok1", saved)
}

func TestExchangeEmptyCodeShowsValidationError(t *testing.T) {
	a, proxy := newTestApp(t, nil)

	_, cmd := a.Update(views.ExchangeRequestMsg{Code: "   "})
	runCmd(t, a, cmd)

	assert.Zero(t, proxy.RequestCount())
	require.Equal(t, 1, a.Model().Notices.Len())
	assert.Contains(t, a.Model().Notices.All()[0].Message, "authorization code")
	assert.Equal(t, "[ Get Access Token ]", a.Label(tui.ControlExchange), "loading cleared on failure")
}

func TestBackendErrorSurfacedVerbatim(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusInternalServerError,
		map[string]string{"error": "upstream exploded"})

	_, cmd := a.Update(views.RefreshRequestMsg{})
	runCmd(t, a, cmd)

	require.Equal(t, 1, a.Model().Notices.Len())
	assert.Equal(t, "upstream exploded", a.Model().Notices.All()[0].Message)
	assert.Equal(t, tui.NoticeError, a.Model().Notices.All()[0].Kind)
	assert.Equal(t, "[ Refresh Logs ]", a.Label(tui.ControlRefresh))
}

func TestFailedRefreshKeepsPreviousList(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, testutil.SampleLogs())

	_, cmd := a.Update(tui.TokenLoadedMsg{Token: "tok1"})
	runCmd(t, a, cmd)
	require.Len(t, a.Model().Logs, 2)

	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusBadGateway,
		map[string]string{"error": "proxy down"})
	_, cmd = a.Update(views.RefreshRequestMsg{})
	runCmd(t, a, cmd)

	assert.Len(t, a.Model().Logs, 2, "failed refresh must not clear displayed data")
	assert.Equal(t, 1, a.Model().Notices.Len())
}

func TestDeleteWithoutConfirmationSendsNothing(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList

	_, cmd := a.Update(views.DeleteRequestMsg{ID: 42, Summary: "Log #42"})
	assert.Nil(t, cmd)
	assert.Equal(t, tui.StateConfirm, a.Model().State)

	_, cmd = a.Update(views.CancelDeleteMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, tui.StateList, a.Model().State)
	assert.Zero(t, proxy.RequestCount())
}

func TestConfirmedDeleteRefetchesWithCurrentFilters(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList
	a.Model().Filters = model.FilterCriteria{Severity: "high"}
	proxy.HandleJSON(http.MethodDelete, "/api/accident-logs/42", http.StatusOK, map[string]string{})
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs/filter", http.StatusOK, []model.AccidentLog{})

	_, cmd := a.Update(views.ConfirmDeleteMsg{ID: 42})
	runCmd(t, a, cmd)

	req := proxy.LastRequest()
	assert.Equal(t, "/api/accident-logs/filter", req.URL.Path)
	assert.Equal(t, "high", req.URL.Query().Get("severity"))

	var sawSuccess bool
	for _, n := range a.Model().Notices.All() {
		if n.Kind == tui.NoticeSuccess {
			sawSuccess = true
		}
	}
	assert.True(t, sawSuccess, "delete success notice expected")
}

func TestCreateRefetchesWithCurrentFilters(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateForm
	a.Model().Filters = model.FilterCriteria{Company: "Acme"}
	proxy.HandleJSON(http.MethodPost, "/api/accident-logs", http.StatusCreated, model.AccidentLog{ID: 9})
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs/filter", http.StatusOK,
		[]model.AccidentLog{{ID: 9, InvolvedCompany: "Acme"}})

	draft := model.LogDraft{Date: "2024-05-01", InvolvedName: "A", InvolvedCompany: "Acme"}
	_, cmd := a.Update(views.SubmitDraftMsg{Draft: draft})
	runCmd(t, a, cmd)

	assert.Equal(t, tui.StateList, a.Model().State)
	assert.Equal(t, "/api/accident-logs/filter", proxy.LastRequest().URL.Path)
	assert.Equal(t, "Acme", proxy.LastRequest().URL.Query().Get("company"))
	require.Len(t, a.Model().Logs, 1)
	assert.Equal(t, 9, a.Model().Logs[0].ID)
}

func TestStaleFetchResponseDiscarded(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, testutil.SampleLogs())
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs/filter", http.StatusOK,
		[]model.AccidentLog{{ID: 99, Severity: "high"}})

	// First fetch issued but its response held back.
	_, staleCmd := a.Update(views.RefreshRequestMsg{})
	require.NotNil(t, staleCmd)

	// A filter applied before the first response lands supersedes it.
	_, freshCmd := a.Update(views.ApplyFilterMsg{Criteria: model.FilterCriteria{Severity: "high"}})
	runCmd(t, a, freshCmd)
	require.Len(t, a.Model().Logs, 1)

	// Now the stale response arrives; it must be dropped.
	runCmd(t, a, staleCmd)
	require.Len(t, a.Model().Logs, 1)
	assert.Equal(t, 99, a.Model().Logs[0].ID)
}

func TestCancelFormReturnsToList(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.Model().State = tui.StateForm

	_, cmd := a.Update(views.CancelFormMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, tui.StateList, a.Model().State)
	assert.Zero(t, proxy.RequestCount())
}

func TestEditLoadsRecordIntoForm(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs/2", http.StatusOK, testutil.SampleLogs()[1])

	_, cmd := a.Update(views.EditLogMsg{ID: 2})
	runCmd(t, a, cmd)

	assert.Equal(t, tui.StateForm, a.Model().State)
	assert.True(t, a.formView.Editing())
}

func TestUpdateClosesFormAndRefetches(t *testing.T) {
	a, proxy := newTestApp(t, nil)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateForm
	proxy.HandleJSON(http.MethodPut, "/api/accident-logs/2", http.StatusOK, model.AccidentLog{ID: 2})
	proxy.HandleJSON(http.MethodGet, "/api/accident-logs", http.StatusOK, testutil.SampleLogs())

	draft := model.LogDraft{Date: "2024-05-01", InvolvedName: "A", InvolvedCompany: "B"}
	_, cmd := a.Update(views.SubmitDraftMsg{ID: 2, Draft: draft})
	runCmd(t, a, cmd)

	assert.Equal(t, tui.StateList, a.Model().State)
	assert.True(t, a.Model().Fetched)
}

func TestTransportErrorShowsGenericMessage(t *testing.T) {
	cfg := config.DefaultConfig()
	a, _ := newTestApp(t, cfg)
	// Point the client at a dead port to force a transport failure.
	a.client = procore.NewClient("http://127.0.0.1:1", "", 0)
	a.client.SetToken("tok1")
	a.Model().State = tui.StateList

	_, cmd := a.Update(views.RefreshRequestMsg{})
	runCmd(t, a, cmd)

	require.Equal(t, 1, a.Model().Notices.Len())
	assert.Equal(t, "Request failed: backend unreachable or returned an unexpected response",
		a.Model().Notices.All()[0].Message)
}
