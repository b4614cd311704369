package usecase

import (
	"time"

	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"
	"PolyXBets/pkg/clock"
)

// Timings is the fixed choreography of a page view.
type Timings struct {
	IntroCombine    time.Duration // splash logos merge
	IntroDuration   time.Duration // splash replaced by the main site
	ToastTTL        time.Duration
	ScrollThreshold float64
}

// DefaultTimings returns the stock choreography.
func DefaultTimings() Timings {
	return Timings{
		IntroCombine:    1200 * time.Millisecond,
		IntroDuration:   3200 * time.Millisecond,
		ToastTTL:        3000 * time.Millisecond,
		ScrollThreshold: 50,
	}
}

// Shell owns the view state of one page view: the load phase, the
// splash sequencer, the toast slot and the navbar scroll flag. Every
// change is reported to the observer. Like its parts, Shell must be
// driven from a single goroutine.
type Shell struct {
	sched    clock.Scheduler
	timings  Timings
	observer func(models.ChangeKind)

	load       models.LoadPhase
	introPhase models.IntroPhase
	intro      *IntroSequencer
	toast      *ToastChannel
	scroll     *ScrollTracker
	loadTimer  clock.Timer
	mounted    bool
	torn       bool
}

// NewShell creates an unmounted shell. observer may be nil.
func NewShell(sched clock.Scheduler, timings Timings, observer func(models.ChangeKind)) *Shell {
	if observer == nil {
		observer = func(models.ChangeKind) {}
	}
	s := &Shell{
		sched:    sched,
		timings:  timings,
		observer: observer,
		scroll:   NewScrollTracker(timings.ScrollThreshold),
	}
	s.toast = NewToastChannel(sched, timings.ToastTTL, func() { s.notify(models.ChangeToast) })
	return s
}

// Mount starts the splash sequencer and the load timer. Only the first
// call has effect.
func (s *Shell) Mount() {
	if s.mounted || s.torn {
		return
	}
	s.mounted = true
	s.intro = NewIntroSequencer(s.sched, s.timings.IntroCombine, func() {
		s.introPhase = s.intro.Phase()
		s.notify(models.ChangeIntroPhase)
	})
	s.intro.Activate()
	s.loadTimer = s.sched.AfterFunc(s.timings.IntroDuration, s.enterMain)
}

func (s *Shell) enterMain() {
	if s.torn || s.load == models.LoadPhaseMain {
		return
	}
	s.loadTimer = nil
	s.load = models.LoadPhaseMain
	if s.intro != nil {
		s.intro.Deactivate()
		s.intro = nil
	}
	s.scroll.Attach()
	s.notify(models.ChangeLoadPhase)
}

// Unmount releases every timer and subscription. Safe to call more than
// once; afterwards the state is frozen.
func (s *Shell) Unmount() {
	if s.torn {
		return
	}
	s.torn = true
	if s.loadTimer != nil {
		s.loadTimer.Stop()
		s.loadTimer = nil
	}
	if s.intro != nil {
		s.intro.Deactivate()
		s.intro = nil
	}
	s.toast.Close()
	s.scroll.Detach()
}

// Publisher is the toast capability handed to interactive sections.
func (s *Shell) Publisher() service.Publisher { return s.toast }

// Scroll feeds a viewport offset to the navbar tracker.
func (s *Shell) Scroll(offset float64) {
	if s.torn {
		return
	}
	if s.scroll.Observe(offset) {
		s.notify(models.ChangeScroll)
	}
}

// Snapshot returns the current view state.
func (s *Shell) Snapshot() models.ViewState {
	return models.ViewState{
		Load:     s.load,
		Intro:    s.introPhase,
		Toast:    s.toast.Toast(),
		Scrolled: s.scroll.Scrolled(),
	}
}

// IntroMounted reports whether the splash sequencer is still mounted.
func (s *Shell) IntroMounted() bool { return s.intro != nil && s.intro.Active() }

// Torn reports whether Unmount was called.
func (s *Shell) Torn() bool { return s.torn }

func (s *Shell) notify(kind models.ChangeKind) {
	if s.torn {
		return
	}
	s.observer(kind)
}
