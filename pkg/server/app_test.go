package server

import (
	"context"
	"testing"
	"time"

	"PolyXBets/internal/session"
	"PolyXBets/pkg/clock"
	"PolyXBets/pkg/config"
	xhttp "PolyXBets/pkg/http"
	applogger "PolyXBets/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRunContextShutsDown(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	srv := xhttp.NewServer(nil,
		xhttp.WithHost("127.0.0.1"),
		xhttp.WithPort(0),
		xhttp.WithTimeouts(time.Second, time.Second, time.Second),
		xhttp.WithMetrics("", reg, reg),
	)
	hub := session.NewHub(session.Deps{Scheduler: clock.New()}, 1)
	app := New(cfg, applogger.Nop(), srv, hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	require.True(t, hub.Full())
}
