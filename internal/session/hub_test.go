package session

import (
	"context"
	"testing"
	"time"

	"PolyXBets/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubLimitsAndShutdown(t *testing.T) {
	clk := clock.NewManual(epoch)
	hub := NewHub(testDeps(clk, newFakeMetrics()), 1)
	assert.False(t, hub.Full())

	first := newFakeConn()
	done := make(chan error, 1)
	go func() { done <- hub.Serve(context.Background(), first) }()
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, time.Millisecond)
	assert.True(t, hub.Full())

	second := newFakeConn()
	assert.ErrorIs(t, hub.Serve(context.Background(), second), ErrFull)
	select {
	case <-second.closed:
	default:
		t.Fatal("refused conn left open")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, hub.Shutdown(ctx))
	require.NoError(t, <-done)
	assert.Equal(t, 0, hub.Len())
	assert.True(t, hub.Full())

	assert.ErrorIs(t, hub.Serve(context.Background(), newFakeConn()), ErrClosed)
}

func TestHubRemovesFinishedSessions(t *testing.T) {
	clk := clock.NewManual(epoch)
	hub := NewHub(testDeps(clk, newFakeMetrics()), 2)

	conn := newFakeConn()
	done := make(chan error, 1)
	go func() { done <- hub.Serve(context.Background(), conn) }()
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, time.Millisecond)

	close(conn.in)
	require.NoError(t, <-done)
	assert.Equal(t, 0, hub.Len())
}

func TestLoopTimerStopSuppressesPosted(t *testing.T) {
	clk := clock.NewManual(epoch)
	var queued []func()
	sched := loopScheduler{base: clk, post: func(f func()) { queued = append(queued, f) }}

	fired := false
	tm := sched.AfterFunc(time.Second, func() { fired = true })
	clk.Advance(time.Second)
	require.Len(t, queued, 1)

	assert.True(t, tm.Stop())
	queued[0]()
	assert.False(t, fired)
	assert.False(t, tm.Stop())
}
