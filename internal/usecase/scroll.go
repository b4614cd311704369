package usecase

// ScrollTracker derives the navbar "scrolled" flag from scroll offsets.
type ScrollTracker struct {
	threshold float64
	scrolled  bool
	attached  bool
}

// NewScrollTracker creates a detached tracker.
func NewScrollTracker(threshold float64) *ScrollTracker {
	return &ScrollTracker{threshold: threshold}
}

// Attach subscribes the tracker to scroll notifications.
func (t *ScrollTracker) Attach() { t.attached = true }

// Detach unsubscribes the tracker.
func (t *ScrollTracker) Detach() { t.attached = false }

// Attached reports whether observations are being taken.
func (t *ScrollTracker) Attached() bool { return t.attached }

// Observe records offset and reports whether the flag changed.
// Observations while detached are ignored.
func (t *ScrollTracker) Observe(offset float64) bool {
	if !t.attached {
		return false
	}
	next := offset > t.threshold
	if next == t.scrolled {
		return false
	}
	t.scrolled = next
	return true
}

// Scrolled reports whether the last observed offset passed the threshold.
func (t *ScrollTracker) Scrolled() bool { return t.scrolled }
