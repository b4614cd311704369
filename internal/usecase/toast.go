package usecase

import (
	"time"

	"PolyXBets/internal/domain/models"
	"PolyXBets/pkg/clock"
)

// ToastChannel is the single-slot notification bus of a page view.
// A new message replaces the visible one and restarts the dismissal
// timer. It is not safe for concurrent use; drive it from one loop.
type ToastChannel struct {
	sched    clock.Scheduler
	ttl      time.Duration
	onChange func()

	msg     string
	visible bool
	timer   clock.Timer
	gen     uint64
	closed  bool
}

// NewToastChannel creates a channel whose messages live for ttl.
func NewToastChannel(sched clock.Scheduler, ttl time.Duration, onChange func()) *ToastChannel {
	if onChange == nil {
		onChange = func() {}
	}
	return &ToastChannel{sched: sched, ttl: ttl, onChange: onChange}
}

// Publish shows message and schedules its dismissal.
func (c *ToastChannel) Publish(message string) {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.msg, c.visible = message, true
	c.timer = c.sched.AfterFunc(c.ttl, func() { c.dismiss(gen) })
	c.onChange()
}

// dismiss hides the message published as generation gen. A timer that
// fires after being superseded finds a newer generation and does nothing.
func (c *ToastChannel) dismiss(gen uint64) {
	if c.closed || gen != c.gen || !c.visible {
		return
	}
	c.msg, c.visible = "", false
	c.timer = nil
	c.onChange()
}

// Current returns the visible message.
func (c *ToastChannel) Current() (string, bool) {
	return c.msg, c.visible
}

// Toast returns the slot as a model.
func (c *ToastChannel) Toast() models.Toast {
	return models.Toast{Message: c.msg, Visible: c.visible}
}

// Close cancels any pending dismissal. Later publishes are ignored.
func (c *ToastChannel) Close() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.closed = true
}
