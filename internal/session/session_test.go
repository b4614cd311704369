package session

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"PolyXBets/internal/content"
	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/service/ratelimit"
	"PolyXBets/internal/services/series"
	"PolyXBets/internal/services/sparkline"
	"PolyXBets/internal/usecase"
	"PolyXBets/pkg/clock"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeConn struct {
	in        chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	patches   []models.Patch
	pings     int
	readLimit int64
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case b, ok := <-c.in:
		if !ok {
			return 0, nil, io.EOF
		}
		return websocket.TextMessage, b, nil
	case <-c.closed:
		return 0, nil, io.EOF
	}
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	select {
	case <-c.closed:
		return websocket.ErrCloseSent
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patches = append(c.patches, v.(models.Patch))
	return nil
}

func (c *fakeConn) WriteControl(int, []byte, time.Time) error {
	c.mu.Lock()
	c.pings++
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) SetReadLimit(n int64) {
	c.mu.Lock()
	c.readLimit = n
	c.mu.Unlock()
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) send(t *testing.T, ev map[string]interface{}) {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	c.in <- b
}

func (c *fakeConn) written() []models.Patch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Patch(nil), c.patches...)
}

func (c *fakeConn) last() models.Patch {
	p := c.written()
	return p[len(p)-1]
}

type fakeMetrics struct {
	mu        sync.Mutex
	opened    int
	closed    int
	toasts    []string
	phases    []string
	events    map[string]int
	throttled int
	errors    map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{events: map[string]int{}, errors: map[string]int{}}
}

func (m *fakeMetrics) SessionOpened() { m.mu.Lock(); m.opened++; m.mu.Unlock() }
func (m *fakeMetrics) SessionClosed(time.Duration) {
	m.mu.Lock()
	m.closed++
	m.mu.Unlock()
}
func (m *fakeMetrics) RecordToast(a string) { m.mu.Lock(); m.toasts = append(m.toasts, a); m.mu.Unlock() }
func (m *fakeMetrics) RecordPhase(p string) { m.mu.Lock(); m.phases = append(m.phases, p); m.mu.Unlock() }
func (m *fakeMetrics) RecordClientEvent(k string) {
	m.mu.Lock()
	m.events[k]++
	m.mu.Unlock()
}
func (m *fakeMetrics) RecordThrottled(string) { m.mu.Lock(); m.throttled++; m.mu.Unlock() }
func (m *fakeMetrics) RecordError(k string) {
	m.mu.Lock()
	m.errors[k]++
	m.mu.Unlock()
}

func (m *fakeMetrics) errorCount(k string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[k]
}

type fixedSource struct{}

func (fixedSource) Float64() float64 { return 0.5 }

type harness struct {
	clk     *clock.Manual
	conn    *fakeConn
	metrics *fakeMetrics
	sess    *Session
	cancel  context.CancelFunc
	result  chan error
}

func testDeps(clk *clock.Manual, m *fakeMetrics) Deps {
	return Deps{
		Scheduler: clk,
		Series:    series.New(fixedSource{}),
		Charts:    sparkline.New(320, 120),
		Catalog:   content.Catalog(),
		Limiter:   ratelimit.New(2, 1, clk.Now),
		Metrics:   m,
		Options: Options{
			Timings:      usecase.DefaultTimings(),
			PingInterval: 30 * time.Second,
			WriteTimeout: 5 * time.Second,
			ReadLimit:    4096,
		},
	}
}

func start(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clk:     clock.NewManual(epoch),
		conn:    newFakeConn(),
		metrics: newFakeMetrics(),
		result:  make(chan error, 1),
	}
	h.sess = New(h.conn, testDeps(h.clk, h.metrics))

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.result <- h.sess.Run(ctx) }()

	// intro, load and ping timers
	require.Eventually(t, func() bool { return len(h.conn.written()) == 2 && h.clk.Pending() == 3 }, time.Second, time.Millisecond)
	t.Cleanup(cancel)
	return h
}

func (h *harness) waitPatches(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(h.conn.written()) >= n }, time.Second, time.Millisecond)
}

func (h *harness) stop(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.result:
		return err
	case <-time.After(time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func TestSessionMountSync(t *testing.T) {
	h := start(t)
	ps := h.conn.written()

	assert.Equal(t, models.PatchReplace, ps[0].Op)
	assert.Equal(t, "#root", ps[0].Target)
	assert.Contains(t, ps[0].HTML, `data-phase="separate"`)
	assert.Equal(t, "#toast", ps[1].Target)
	assert.Empty(t, ps[1].HTML)

	assert.Equal(t, int64(4096), h.conn.readLimit)
	assert.NotEmpty(t, h.sess.ID())
}

func TestSessionTimeline(t *testing.T) {
	h := start(t)

	h.clk.Advance(1199 * time.Millisecond)
	assert.Len(t, h.conn.written(), 2)

	h.clk.Advance(time.Millisecond)
	h.waitPatches(t, 3)
	assert.Contains(t, h.conn.last().HTML, `data-phase="combined"`)

	h.clk.Advance(1999 * time.Millisecond)
	assert.Len(t, h.conn.written(), 3)

	h.clk.Advance(time.Millisecond)
	h.waitPatches(t, 4)
	main := h.conn.last()
	assert.Equal(t, "#root", main.Target)
	assert.Contains(t, main.HTML, `id="navbar"`)
	assert.NotContains(t, main.HTML, `id="intro"`)

	h.metrics.mu.Lock()
	assert.Equal(t, []string{"combined", "main"}, h.metrics.phases)
	h.metrics.mu.Unlock()
}

func TestSessionActionToast(t *testing.T) {
	h := start(t)
	h.clk.Advance(3200 * time.Millisecond)
	h.waitPatches(t, 4)

	h.conn.send(t, map[string]interface{}{"type": "action", "action": "signin"})
	h.waitPatches(t, 5)
	toast := h.conn.last()
	assert.Equal(t, "#toast", toast.Target)
	assert.Contains(t, toast.HTML, "Coming soon!")

	h.clk.Advance(2999 * time.Millisecond)
	assert.Len(t, h.conn.written(), 5)

	h.clk.Advance(time.Millisecond)
	h.waitPatches(t, 6)
	assert.Equal(t, "#toast", h.conn.last().Target)
	assert.Empty(t, h.conn.last().HTML)
}

func TestSessionScroll(t *testing.T) {
	h := start(t)

	// the navbar is not mounted during the intro
	h.conn.send(t, map[string]interface{}{"type": "scroll", "offset": 500})
	require.Eventually(t, func() bool {
		h.metrics.mu.Lock()
		defer h.metrics.mu.Unlock()
		return h.metrics.events["scroll"] == 1
	}, time.Second, time.Millisecond)
	assert.Len(t, h.conn.written(), 2)

	h.clk.Advance(3200 * time.Millisecond)
	h.waitPatches(t, 4)

	h.conn.send(t, map[string]interface{}{"type": "scroll", "offset": 51})
	h.waitPatches(t, 6)
	ps := h.conn.written()
	assert.Equal(t, models.Patch{Op: models.PatchAttr, Target: "#navbar", Name: "data-scrolled", Value: "true"}, ps[4])
	assert.Equal(t, "class", ps[5].Name)

	// unchanged state sends nothing
	h.conn.send(t, map[string]interface{}{"type": "scroll", "offset": 900})
	h.conn.send(t, map[string]interface{}{"type": "scroll", "offset": 50})
	h.waitPatches(t, 8)
	assert.Equal(t, "false", h.conn.written()[6].Value)
}

func TestSessionThrottlesActions(t *testing.T) {
	h := start(t)
	h.clk.Advance(3200 * time.Millisecond)
	h.waitPatches(t, 4)

	for i := 0; i < 3; i++ {
		h.conn.send(t, map[string]interface{}{"type": "action", "action": "waitlist"})
	}
	require.Eventually(t, func() bool {
		h.metrics.mu.Lock()
		defer h.metrics.mu.Unlock()
		return h.metrics.throttled == 1
	}, time.Second, time.Millisecond)
	assert.Len(t, h.conn.written(), 6)
}

func TestSessionIgnoresBadEvents(t *testing.T) {
	h := start(t)

	h.conn.in <- []byte("not json")
	h.conn.send(t, map[string]interface{}{"type": "bogus"})
	h.conn.send(t, map[string]interface{}{"type": "action"})
	h.conn.send(t, map[string]interface{}{"type": "action", "action": "nope"})

	require.Eventually(t, func() bool {
		return h.metrics.errorCount("decode") == 1 &&
			h.metrics.errorCount("invalid_event") == 2 &&
			h.metrics.errorCount("unknown_action") == 1
	}, time.Second, time.Millisecond)

	// still alive
	h.clk.Advance(1200 * time.Millisecond)
	h.waitPatches(t, 3)
}

func TestSessionTeardownCancelsTimers(t *testing.T) {
	h := start(t)
	h.conn.send(t, map[string]interface{}{"type": "action", "action": "learn-more"})
	h.waitPatches(t, 3)

	close(h.conn.in)
	require.NoError(t, h.stop(t))

	assert.Equal(t, 0, h.clk.Pending())
	h.clk.Advance(time.Minute)
	assert.Len(t, h.conn.written(), 3)

	h.metrics.mu.Lock()
	assert.Equal(t, 1, h.metrics.opened)
	assert.Equal(t, 1, h.metrics.closed)
	h.metrics.mu.Unlock()
}

func TestSessionPing(t *testing.T) {
	h := start(t)
	h.clk.Advance(30 * time.Second)
	require.Eventually(t, func() bool {
		h.conn.mu.Lock()
		defer h.conn.mu.Unlock()
		return h.conn.pings == 1
	}, time.Second, time.Millisecond)

	// rescheduled
	require.Eventually(t, func() bool { return h.clk.Pending() == 1 }, time.Second, time.Millisecond)
}

func TestSessionContextCancel(t *testing.T) {
	h := start(t)
	h.cancel()
	require.NoError(t, h.stop(t))

	select {
	case <-h.conn.closed:
	default:
		t.Fatal("conn not closed")
	}
}

func TestSessionFixturesUseSource(t *testing.T) {
	h := start(t)
	h.clk.Advance(3200 * time.Millisecond)
	h.waitPatches(t, 4)

	// a constant source keeps every walk flat at its baseline
	html := h.conn.last().HTML
	for _, tip := range []string{"32% Probability", "68% Probability", "25% Probability"} {
		assert.True(t, strings.Contains(html, tip), tip)
	}
}
