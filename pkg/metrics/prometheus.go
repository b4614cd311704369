package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	sessionsActive  prometheus.Gauge
	sessionsTotal   prometheus.Counter
	sessionLifetime prometheus.Histogram
	toastsTotal     *prometheus.CounterVec
	phaseTotal      *prometheus.CounterVec
	clientEvents    *prometheus.CounterVec
	throttledTotal  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
}

// New creates a recorder registered on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "polyxbets_sessions_active",
			Help: "Number of live page sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "polyxbets_sessions_total",
			Help: "Total page sessions opened",
		}),
		sessionLifetime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "polyxbets_session_lifetime_seconds",
			Help:    "How long page sessions stay connected",
			Buckets: []float64{1, 3.2, 5, 10, 30, 60, 300, 900, 3600},
		}),
		toastsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "polyxbets_toasts_published_total",
			Help: "Toasts published, by action",
		}, []string{"action"}),
		phaseTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "polyxbets_phase_transitions_total",
			Help: "View phase transitions, by target phase",
		}, []string{"phase"}),
		clientEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "polyxbets_client_events_total",
			Help: "Events received from browsers, by type",
		}, []string{"type"}),
		throttledTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "polyxbets_client_events_throttled_total",
			Help: "Events dropped by the per-session rate limit",
		}, []string{"type"}),
		errorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "polyxbets_errors_total",
			Help: "Total number of errors encountered",
		}, []string{"type"}),
	}
}

func (r *Recorder) SessionOpened() {
	r.sessionsActive.Inc()
	r.sessionsTotal.Inc()
}

func (r *Recorder) SessionClosed(lifetime time.Duration) {
	r.sessionsActive.Dec()
	r.sessionLifetime.Observe(lifetime.Seconds())
}

func (r *Recorder) RecordToast(action string) { r.toastsTotal.WithLabelValues(action).Inc() }

func (r *Recorder) RecordPhase(phase string) { r.phaseTotal.WithLabelValues(phase).Inc() }

func (r *Recorder) RecordClientEvent(kind string) { r.clientEvents.WithLabelValues(kind).Inc() }

func (r *Recorder) RecordThrottled(kind string) { r.throttledTotal.WithLabelValues(kind).Inc() }

func (r *Recorder) RecordError(kind string) { r.errorsTotal.WithLabelValues(kind).Inc() }
