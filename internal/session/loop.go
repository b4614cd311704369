package session

import (
	"time"

	"PolyXBets/pkg/clock"
)

// loopScheduler runs timer callbacks on the session loop instead of the
// timer goroutine.
type loopScheduler struct {
	base clock.Scheduler
	post func(func())
}

func (s loopScheduler) Now() time.Time { return s.base.Now() }

func (s loopScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	t := &loopTimer{}
	t.base = s.base.AfterFunc(d, func() {
		s.post(func() {
			if t.stopped {
				return
			}
			t.fired = true
			f()
		})
	})
	return t
}

// loopTimer fields are only touched on the loop goroutine.
type loopTimer struct {
	base    clock.Timer
	stopped bool
	fired   bool
}

// Stop also suppresses a callback already posted but not yet run.
func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.base.Stop()
	return true
}
