package usecase

import (
	"time"

	"PolyXBets/internal/domain/models"
	"PolyXBets/pkg/clock"
)

// IntroSequencer moves the splash logos from Separate to Combined once.
type IntroSequencer struct {
	sched    clock.Scheduler
	delay    time.Duration
	onChange func()

	phase     models.IntroPhase
	timer     clock.Timer
	activated bool
	active    bool
}

// NewIntroSequencer creates a sequencer that combines after delay.
func NewIntroSequencer(sched clock.Scheduler, delay time.Duration, onChange func()) *IntroSequencer {
	if onChange == nil {
		onChange = func() {}
	}
	return &IntroSequencer{sched: sched, delay: delay, onChange: onChange}
}

// Activate starts the combine timer. Only the first call has effect.
func (s *IntroSequencer) Activate() {
	if s.activated {
		return
	}
	s.activated, s.active = true, true
	s.timer = s.sched.AfterFunc(s.delay, s.combine)
}

func (s *IntroSequencer) combine() {
	if !s.active || s.phase == models.IntroPhaseCombined {
		return
	}
	s.phase = models.IntroPhaseCombined
	s.timer = nil
	s.onChange()
}

// Deactivate releases the timer. Safe to call more than once.
func (s *IntroSequencer) Deactivate() {
	s.active = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Phase returns the current logo beat.
func (s *IntroSequencer) Phase() models.IntroPhase { return s.phase }

// Active reports whether the sequencer is mounted.
func (s *IntroSequencer) Active() bool { return s.active }
