// Package session runs the server side of one live page view over a
// WebSocket. Each session owns a single loop goroutine: client events,
// timer callbacks and pings are all handled there, so the view state is
// never touched concurrently.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"PolyXBets/internal/content"
	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/repository"
	"PolyXBets/internal/service/ratelimit"
	"PolyXBets/internal/services/series"
	"PolyXBets/internal/services/sparkline"
	"PolyXBets/internal/usecase"
	"PolyXBets/internal/view"
	"PolyXBets/pkg/clock"
	xhttp "PolyXBets/pkg/http"
	applogger "PolyXBets/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	g "maragu.dev/gomponents"
)

// Conn is the subset of *websocket.Conn a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	SetReadLimit(limit int64)
	Close() error
}

// Options are the per-session tunables.
type Options struct {
	Timings      usecase.Timings
	PingInterval time.Duration
	WriteTimeout time.Duration
	ReadLimit    int64
}

// Deps are shared by every session of a hub.
type Deps struct {
	Scheduler clock.Scheduler
	Series    *series.Generator
	Charts    *sparkline.Renderer
	Catalog   models.Catalog
	Limiter   *ratelimit.Limiter
	Metrics   repository.Metrics
	Logger    *applogger.Logger
	Options   Options
}

// Session is one connected page view.
type Session struct {
	id      string
	conn    Conn
	deps    Deps
	log     *applogger.Logger
	started time.Time

	sched clock.Scheduler
	shell *usecase.Shell
	page  *view.Page

	events  chan models.ClientEvent
	tasks   chan func()
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
	readErr error
	ping    clock.Timer
	werr    error
}

// New creates a session for conn. Nothing runs until Run.
func New(conn Conn, deps Deps) *Session {
	if deps.Metrics == nil {
		deps.Metrics = repository.NoopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = applogger.Nop()
	}
	id := uuid.NewString()
	s := &Session{
		id:     id,
		conn:   conn,
		deps:   deps,
		log:    deps.Logger.With(applogger.String("session", id)),
		events: make(chan models.ClientEvent),
		tasks:  make(chan func()),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.sched = loopScheduler{base: deps.Scheduler, post: s.post}
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Close asks the loop to tear down. Safe from any goroutine.
func (s *Session) Close() {
	s.once.Do(func() { close(s.stop) })
}

// Run mounts the page view and serves it until the client goes away,
// ctx is cancelled or Close is called. The connection is closed on return.
func (s *Session) Run(ctx context.Context) error {
	s.started = s.deps.Scheduler.Now()
	s.conn.SetReadLimit(s.deps.Options.ReadLimit)
	s.deps.Metrics.SessionOpened()
	s.log.Info("session opened")

	go s.readLoop()
	defer s.teardown()

	s.mount()
	for {
		if s.werr != nil {
			return s.werr
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case fn := <-s.tasks:
			fn()
		case ev, ok := <-s.events:
			if !ok {
				if websocket.IsUnexpectedCloseError(s.readErr, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
					return s.readErr
				}
				return nil
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *Session) mount() {
	s.shell = usecase.NewShell(s.sched, s.deps.Options.Timings, s.onChange)
	s.page = view.NewPage(s.shell.Publisher(), view.PageOptions{
		Catalog:  s.deps.Catalog,
		Fixtures: s.deps.Series.Fixtures(content.Baselines[:]...),
		Charts:   s.deps.Charts,
		Year:     s.deps.Scheduler.Now().Year(),
		Logger:   s.log,
	})

	s.shell.Mount()
	s.schedulePing()

	// Sync the client with the fresh view, whatever it rendered before.
	state := s.shell.Snapshot()
	s.replace(view.RootID, s.page.Root(state))
	s.replace(view.ToastID, view.ToastSlot(state.Toast))
}

func (s *Session) teardown() {
	if s.shell != nil {
		s.shell.Unmount()
	}
	if s.ping != nil {
		s.ping.Stop()
	}
	close(s.done)
	_ = s.conn.Close()

	if s.deps.Limiter != nil {
		s.deps.Limiter.Forget(s.id)
	}
	lifetime := s.deps.Scheduler.Now().Sub(s.started)
	s.deps.Metrics.SessionClosed(lifetime)
	s.log.Info("session closed", applogger.Duration("lifetime_ms", lifetime))
}

// post hands fn to the loop. It is dropped once the session is gone.
func (s *Session) post(fn func()) {
	select {
	case s.tasks <- fn:
	case <-s.done:
	}
}

func (s *Session) readLoop() {
	defer close(s.events)
	for {
		_, b, err := s.conn.ReadMessage()
		if err != nil {
			s.readErr = err
			return
		}
		var ev models.ClientEvent
		if err := json.Unmarshal(b, &ev); err != nil {
			s.log.Warn("undecodable client event", applogger.Error(err))
			s.deps.Metrics.RecordError("decode")
			continue
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Session) handle(ctx context.Context, ev models.ClientEvent) {
	if verr := xhttp.ValidateStruct(ctx, &ev); verr != nil {
		s.log.Warn("invalid client event", applogger.Any("errors", verr))
		s.deps.Metrics.RecordError("invalid_event")
		return
	}
	s.deps.Metrics.RecordClientEvent(ev.Type)

	switch ev.Type {
	case models.EventScroll:
		s.shell.Scroll(ev.Offset)
	case models.EventAction:
		if s.deps.Limiter != nil && !s.deps.Limiter.Allow(s.id) {
			s.deps.Metrics.RecordThrottled(ev.Type)
			s.log.Debug("action throttled", applogger.String("action", ev.Action))
			return
		}
		fn, ok := s.page.Action(ev.Action)
		if !ok {
			s.log.Warn("unknown action", applogger.String("action", ev.Action))
			s.deps.Metrics.RecordError("unknown_action")
			return
		}
		fn()
		s.deps.Metrics.RecordToast(ev.Action)
	}
}

func (s *Session) onChange(kind models.ChangeKind) {
	state := s.shell.Snapshot()
	switch kind {
	case models.ChangeIntroPhase:
		s.deps.Metrics.RecordPhase(state.Intro.String())
		s.replace(view.RootID, s.page.Root(state))
	case models.ChangeLoadPhase:
		s.deps.Metrics.RecordPhase(state.Load.String())
		s.replace(view.RootID, s.page.Root(state))
	case models.ChangeToast:
		s.replace(view.ToastID, view.ToastSlot(state.Toast))
	case models.ChangeScroll:
		target := "#" + view.NavbarID
		s.write(models.Patch{Op: models.PatchAttr, Target: target, Name: "data-scrolled", Value: strconv.FormatBool(state.Scrolled)})
		s.write(models.Patch{Op: models.PatchAttr, Target: target, Name: "class", Value: view.NavbarClass(state.Scrolled)})
	}
}

func (s *Session) schedulePing() {
	if s.deps.Options.PingInterval <= 0 {
		return
	}
	s.ping = s.sched.AfterFunc(s.deps.Options.PingInterval, func() {
		deadline := s.deps.Scheduler.Now().Add(s.deps.Options.WriteTimeout)
		if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			s.fail(err)
			return
		}
		s.schedulePing()
	})
}

func (s *Session) replace(id string, n g.Node) {
	html, err := view.Render(n)
	if err != nil {
		s.log.Error("render failed", applogger.String("target", id), applogger.Error(err))
		s.deps.Metrics.RecordError("render")
		return
	}
	s.write(models.Patch{Op: models.PatchReplace, Target: "#" + id, HTML: html})
}

func (s *Session) write(p models.Patch) {
	if s.werr != nil {
		return
	}
	if err := s.conn.SetWriteDeadline(s.deps.Scheduler.Now().Add(s.deps.Options.WriteTimeout)); err != nil {
		s.fail(err)
		return
	}
	if err := s.conn.WriteJSON(p); err != nil {
		s.fail(err)
	}
}

// fail records the first write error; the loop exits on it.
func (s *Session) fail(err error) {
	if s.werr != nil {
		return
	}
	if !errors.Is(err, websocket.ErrCloseSent) {
		s.log.Warn("session write failed", applogger.Error(err))
	}
	s.deps.Metrics.RecordError("write")
	s.werr = err
}
