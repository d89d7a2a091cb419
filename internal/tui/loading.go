package tui

// busySuffix is appended to a control's label while a request is in flight.
const busySuffix = " Loading..."

// Loading tracks per-control busy state. Each control's flag is
// independent; the original label is stored on the first Start and given
// back on Stop, so repeated Start calls cannot lose it.
type Loading struct {
	original map[string]string
}

// NewLoading creates an empty tracker.
func NewLoading() *Loading {
	return &Loading{original: make(map[string]string)}
}

// Start marks control busy and returns the label to display. label is the
// control's current label; it is stored only if the control was idle.
func (l *Loading) Start(control, label string) string {
	orig, busy := l.original[control]
	if !busy {
		l.original[control] = label
		orig = label
	}
	return orig + busySuffix
}

// Stop marks control idle and returns the original label exactly as it was
// when Start first ran. fallback is returned if the control was not busy.
func (l *Loading) Stop(control, fallback string) string {
	orig, busy := l.original[control]
	if !busy {
		return fallback
	}
	delete(l.original, control)
	return orig
}

// Busy reports whether control has a request in flight. Busy controls are
// disabled: their key handlers ignore input.
func (l *Loading) Busy(control string) bool {
	_, busy := l.original[control]
	return busy
}

// Label returns what control should display right now.
func (l *Loading) Label(control, idleLabel string) string {
	if orig, busy := l.original[control]; busy {
		return orig + busySuffix
	}
	return idleLabel
}
