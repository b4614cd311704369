package session

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrFull is returned when the hub is at max sessions.
	ErrFull = errors.New("session: too many live sessions")
	// ErrClosed is returned after Shutdown.
	ErrClosed = errors.New("session: hub closed")
)

// Hub tracks live sessions and caps their number.
type Hub struct {
	deps Deps
	max  int

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
	wg       sync.WaitGroup
}

func NewHub(deps Deps, maxSessions int) *Hub {
	return &Hub{
		deps:     deps,
		max:      maxSessions,
		sessions: make(map[string]*Session),
	}
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Full reports whether a new session would be rejected.
func (h *Hub) Full() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed || len(h.sessions) >= h.max
}

// Serve runs a session on conn and blocks until it ends. conn is closed
// even when the hub refuses it.
func (h *Hub) Serve(ctx context.Context, conn Conn) error {
	s, err := h.add(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer h.remove(s)
	return s.Run(ctx)
}

func (h *Hub) add(conn Conn) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}
	if len(h.sessions) >= h.max {
		return nil, ErrFull
	}
	s := New(conn, h.deps)
	h.sessions[s.ID()] = s
	h.wg.Add(1)
	return s, nil
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s.ID())
	h.mu.Unlock()
	h.wg.Done()
}

// Shutdown closes every session and waits for them to finish or ctx to
// expire. New sessions are refused afterwards.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	for _, s := range h.sessions {
		s.Close()
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
