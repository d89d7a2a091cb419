package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Notification lifetimes. Errors linger a little longer.
const (
	ErrorNoticeTTL   = 5 * time.Second
	SuccessNoticeTTL = 3 * time.Second
)

// NoticeKind distinguishes success from error notifications.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a single transient notification.
type Notice struct {
	ID      uuid.UUID
	Kind    NoticeKind
	Message string
}

// NoticeStack holds the currently visible notifications. Each push appends;
// notices only leave the stack when their own expiry fires, so simultaneous
// notifications stack instead of replacing one another.
type NoticeStack struct {
	notices []Notice
}

// NewNoticeStack creates an empty stack.
func NewNoticeStack() *NoticeStack {
	return &NoticeStack{}
}

// Push appends a notice and returns the command that expires it.
func (s *NoticeStack) Push(kind NoticeKind, message string) tea.Cmd {
	n := Notice{ID: uuid.New(), Kind: kind, Message: message}
	s.notices = append(s.notices, n)

	ttl := SuccessNoticeTTL
	if kind == NoticeError {
		ttl = ErrorNoticeTTL
	}
	id := n.ID
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}

// Success pushes a success notice.
func (s *NoticeStack) Success(message string) tea.Cmd {
	return s.Push(NoticeSuccess, message)
}

// Error pushes an error notice.
func (s *NoticeStack) Error(message string) tea.Cmd {
	return s.Push(NoticeError, message)
}

// Expire removes the notice with the given id, if it is still visible.
func (s *NoticeStack) Expire(id uuid.UUID) {
	for i, n := range s.notices {
		if n.ID == id {
			s.notices = append(s.notices[:i], s.notices[i+1:]...)
			return
		}
	}
}

// All returns the visible notices, oldest first.
func (s *NoticeStack) All() []Notice {
	return s.notices
}

// Len returns the number of visible notices.
func (s *NoticeStack) Len() int {
	return len(s.notices)
}

// View renders the stack, one styled line per notice.
func (s *NoticeStack) View() string {
	if len(s.notices) == 0 {
		return ""
	}
	out := ""
	for _, n := range s.notices {
		line := n.Message
		if n.Kind == NoticeError {
			line = ErrorStyle.Render("✗ " + line)
		} else {
			line = SuccessStyle.Render("✓ " + line)
		}
		out += line + "\n"
	}
	return out
}
