// Package session persists the bearer token obtained from the
// authorization-code exchange across client restarts.
package session

// Status describes the session for display purposes.
type Status struct {
	TokenPresent bool
	Token        string
}

// Label returns the user-facing session status line.
func (s Status) Label() string {
	if s.TokenPresent {
		return "Token available"
	}
	return "No token"
}

// StatusOf derives the display status from a token value.
func StatusOf(token string) Status {
	return Status{TokenPresent: token != "", Token: token}
}
