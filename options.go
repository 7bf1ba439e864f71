package nanoflow

import "github.com/hupe1980/nanoflow/codec"

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

// Option configures frame construction.
type Option func(*options)

// WithLogger configures the frame's logger.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for frame
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithParallelism sets the number of partitions used to evaluate
// derivations and filters. Values below 1 disable parallel evaluation.
// The default is runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

type snapshotOptions struct {
	codec codec.Codec
	mask  string
}

// SnapshotOption configures a single snapshot write.
type SnapshotOption func(*snapshotOptions)

// WithSnapshotCodec configures the compression codec for the snapshot.
// If nil is passed, codec.Default is used.
func WithSnapshotCodec(c codec.Codec) SnapshotOption {
	return func(o *snapshotOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithSnapshotMask restricts the snapshot to the events selected by the
// named mask.
func WithSnapshotMask(name string) SnapshotOption {
	return func(o *snapshotOptions) {
		o.mask = name
	}
}
