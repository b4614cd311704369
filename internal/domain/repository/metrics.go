package repository

import "time"

// Metrics records site activity.
type Metrics interface {
	SessionOpened()
	SessionClosed(lifetime time.Duration)
	RecordToast(action string)
	RecordPhase(phase string)
	RecordClientEvent(kind string)
	RecordThrottled(kind string)
	RecordError(kind string)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) SessionOpened()              {}
func (NoopMetrics) SessionClosed(time.Duration) {}
func (NoopMetrics) RecordToast(string)          {}
func (NoopMetrics) RecordPhase(string)          {}
func (NoopMetrics) RecordClientEvent(string)    {}
func (NoopMetrics) RecordThrottled(string)      {}
func (NoopMetrics) RecordError(string)          {}
