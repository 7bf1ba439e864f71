package nanoflow

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordDefine is called after each column derivation.
	// events is the number of events evaluated, err is nil if successful.
	RecordDefine(column string, events int, duration time.Duration, err error)

	// RecordFilter is called after each selection mask evaluation.
	// passed is the number of selected events.
	RecordFilter(mask string, passed uint64, events int, duration time.Duration, err error)

	// RecordSnapshot is called after each snapshot write.
	RecordSnapshot(columns, events int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDefine(string, int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordFilter(string, uint64, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshot(int, int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DefineCount      atomic.Int64
	DefineErrors     atomic.Int64
	DefineTotalNanos atomic.Int64

	FilterCount    atomic.Int64
	FilterErrors   atomic.Int64
	EventsSelected atomic.Int64

	SnapshotCount  atomic.Int64
	SnapshotErrors atomic.Int64
}

// RecordDefine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDefine(column string, events int, duration time.Duration, err error) {
	b.DefineCount.Add(1)
	b.DefineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DefineErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(mask string, passed uint64, events int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.EventsSelected.Add(int64(passed))
	if err != nil {
		b.FilterErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(columns, events int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}
