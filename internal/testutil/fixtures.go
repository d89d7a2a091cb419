// Package testutil provides test helper utilities for alog tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gajare/accident-logs/internal/model"
)

// SampleLogs returns a small fixed set of accident logs for tests.
func SampleLogs() []model.AccidentLog {
	return []model.AccidentLog{
		{
			ID:              1,
			Date:            "2024-01-15",
			Datetime:        "2024-01-15T08:30:00Z",
			TimeHour:        8,
			TimeMinute:      30,
			InvolvedName:    "Jordan Price",
			InvolvedCompany: "Acme Steel",
			Severity:        "high",
			Location:        "North scaffold",
			Comments:        "Dropped beam near walkway",
		},
		{
			ID:              2,
			Date:            "2024-01-20",
			Datetime:        "2024-01-20T14:05:00Z",
			TimeHour:        14,
			TimeMinute:      5,
			InvolvedName:    "Sam Okafor",
			InvolvedCompany: "BuildRight",
			Severity:        "low",
		},
	}
}

// StubProxy is an httptest-backed stand-in for the backend proxy. Handlers
// are registered per method+path; unmatched requests return 404 with an
// error body. Requests records every call for assertions.
type StubProxy struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []*http.Request
}

// NewStubProxy starts a stub proxy; it is shut down when the test ends.
func NewStubProxy(t *testing.T) *StubProxy {
	t.Helper()
	p := &StubProxy{handlers: map[string]http.HandlerFunc{}}
	p.Server = httptest.NewServer(http.HandlerFunc(p.dispatch))
	t.Cleanup(p.Server.Close)
	return p
}

// Handle registers a handler for method and path (path only, no query).
func (p *StubProxy) Handle(method, path string, h http.HandlerFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[method+" "+path] = h
}

// HandleJSON registers a handler that responds with status and the JSON
// encoding of body.
func (p *StubProxy) HandleJSON(method, path string, status int, body any) {
	p.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// RequestCount returns how many requests the proxy has received.
func (p *StubProxy) RequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// LastRequest returns the most recent request, or nil when none were made.
func (p *StubProxy) LastRequest() *http.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return nil
	}
	return p.requests[len(p.requests)-1]
}

func (p *StubProxy) dispatch(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.requests = append(p.requests, r.Clone(r.Context()))
	h, ok := p.handlers[r.Method+" "+r.URL.Path]
	p.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		return
	}
	h(w, r)
}
