package di

import (
	"PolyXBets/internal/content"
	"PolyXBets/internal/domain/repository"
	"PolyXBets/internal/handler/api"
	"PolyXBets/internal/service/ratelimit"
	"PolyXBets/internal/services/series"
	"PolyXBets/internal/services/sparkline"
	"PolyXBets/internal/session"
	"PolyXBets/internal/usecase"
	"PolyXBets/pkg/clock"
	"PolyXBets/pkg/config"
	xhttp "PolyXBets/pkg/http"
	applogger "PolyXBets/pkg/logger"
	"PolyXBets/pkg/metrics"
	"PolyXBets/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Mini chart size in pixels.
const (
	chartWidth  = 320
	chartHeight = 120
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideRegistry creates the Prometheus registry shared by the recorder
// and the HTTP middleware.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config, reg *prometheus.Registry) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NoopMetrics{}
	}
	return metrics.New(reg)
}

func ProvideScheduler() clock.Scheduler { return clock.New() }

func ProvideSeriesGenerator() *series.Generator { return series.New(nil) }

func ProvideSparkline() *sparkline.Renderer { return sparkline.New(chartWidth, chartHeight) }

// ProvideActionLimiter creates the per-session action rate limiter.
func ProvideActionLimiter(cfg *config.Config, sched clock.Scheduler) *ratelimit.Limiter {
	return ratelimit.New(cfg.Session.ActionCapacity, cfg.Session.ActionRefill, sched.Now)
}

// ProvideTimings maps site config to the page choreography.
func ProvideTimings(cfg *config.Config) usecase.Timings {
	return usecase.Timings{
		IntroCombine:    cfg.Site.IntroCombine,
		IntroDuration:   cfg.Site.IntroDuration,
		ToastTTL:        cfg.Site.ToastTTL,
		ScrollThreshold: cfg.Site.ScrollThreshold,
	}
}

// ProvideHub creates the live session hub.
func ProvideHub(
	cfg *config.Config,
	sched clock.Scheduler,
	gen *series.Generator,
	charts *sparkline.Renderer,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
	log *applogger.Logger,
	timings usecase.Timings,
) *session.Hub {
	return session.NewHub(session.Deps{
		Scheduler: sched,
		Series:    gen,
		Charts:    charts,
		Catalog:   content.Catalog(),
		Limiter:   limiter,
		Metrics:   m,
		Logger:    log,
		Options: session.Options{
			Timings:      timings,
			PingInterval: cfg.Session.PingInterval,
			WriteTimeout: cfg.Session.WriteTimeout,
			ReadLimit:    cfg.Session.ReadLimit,
		},
	}, cfg.Session.MaxSessions)
}

// ProvideSiteHandler creates the HTTP handler.
func ProvideSiteHandler(
	cfg *config.Config,
	log *applogger.Logger,
	hub *session.Hub,
	gen *series.Generator,
	charts *sparkline.Renderer,
	sched clock.Scheduler,
) xhttp.Handler {
	return api.NewSiteEchoHandler(log, hub, gen, charts, sched, cfg.Site.URL)
}

// ProvideHTTPServer creates the Echo server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, reg *prometheus.Registry, log *applogger.Logger) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetrics(metricsPath, reg, reg),
		xhttp.WithLogger(log),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, srv *xhttp.Server, hub *session.Hub) *server.App {
	return server.New(cfg, log, srv, hub)
}
