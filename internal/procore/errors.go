package procore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoToken guards every authenticated operation. It is returned before
// any request is made when no bearer token is held.
var ErrNoToken = errors.New("no access token: authorize and exchange a code first")

// ValidationError reports required input missing or empty before
// submission. It never reaches the network.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// TransportError wraps a network failure or an unexpected response body.
// The underlying cause is kept for the audit log; the message shown to the
// user stays generic.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError carries a structured non-2xx response. Message is the
// backend's error field and is surfaced to the user verbatim.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string { return e.Message }
