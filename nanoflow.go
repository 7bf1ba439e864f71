package nanoflow

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/nanoflow/lorentz"
)

// Frame is a columnar table with a fixed number of events.
//
// Columns are typed and named; derived columns are added via Define1..4
// and selection masks via Filter1/Filter2. A Frame is safe for concurrent
// reads; column and mask registration takes a write lock.
type Frame struct {
	numEvents   int
	parallelism int
	logger      *Logger
	metrics     MetricsCollector

	mu    sync.RWMutex
	cols  map[string]Column
	order []string
	masks map[string]*roaring.Bitmap
}

// New creates an empty frame for numEvents events.
func New(numEvents int, optFns ...Option) *Frame {
	opts := options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Frame{
		numEvents:   numEvents,
		parallelism: opts.parallelism,
		logger:      opts.logger,
		metrics:     opts.metrics,
		cols:        make(map[string]Column),
		masks:       make(map[string]*roaring.Bitmap),
	}
}

// NumEvents returns the number of events in the frame.
func (f *Frame) NumEvents() int {
	return f.numEvents
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.cols[name]
	return ok
}

// ColumnNames returns the column names in registration order.
func (f *Frame) ColumnNames() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col, nil
}

// AddColumn registers data as a new column of f.
// The data slice is stored as-is; callers must not mutate it afterwards.
func AddColumn[T any](f *Frame, name string, data []T) error {
	if len(data) != f.numEvents {
		return &ErrLengthMismatch{Column: name, Expected: f.numEvents, Actual: len(data)}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}

	f.cols[name] = &column[T]{name: name, data: data}
	f.order = append(f.order, name)

	f.logger.WithColumn(name).WithEvents(f.numEvents).Debug("column added")
	return nil
}

// ColumnValues returns the backing values of the named column.
// The slice is shared with the frame; callers must not mutate it.
func ColumnValues[T any](f *Frame, name string) ([]T, error) {
	f.mu.RLock()
	col, ok := f.cols[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	typed, ok := col.(*column[T])
	if !ok {
		var want T
		return nil, &ErrColumnType{
			Column:   name,
			Expected: fmt.Sprintf("%T", want),
			Actual:   col.ElemType(),
		}
	}
	return typed.data, nil
}

// Column is a named per-event value sequence.
type Column interface {
	// Name returns the column name.
	Name() string

	// Len returns the number of events.
	Len() int

	// ElemType returns the Go type of one event's value, for diagnostics.
	ElemType() string

	// kind returns the stable type tag stored in snapshots, or "" for
	// types without a snapshot representation.
	kind() string

	// values returns the column data, restricted to the selected event
	// indices when sel is non-nil, in a form encodable by the snapshot
	// payload.
	values(sel []uint32) any
}

type column[T any] struct {
	name string
	data []T
}

func (c *column[T]) Name() string { return c.name }

func (c *column[T]) Len() int { return len(c.data) }

func (c *column[T]) ElemType() string {
	var v T
	return fmt.Sprintf("%T", v)
}

func (c *column[T]) kind() string {
	var v T
	switch any(v).(type) {
	case float32:
		return kindFloat32
	case float64:
		return kindFloat64
	case int32:
		return kindInt32
	case uint8:
		return kindUint8
	case bool:
		return kindBool
	case []float32:
		return kindFloat32s
	case []int32:
		return kindInt32s
	case lorentz.PtEtaPhiM:
		return kindFourVec
	default:
		return ""
	}
}

func (c *column[T]) values(sel []uint32) any {
	if sel == nil {
		return c.data
	}
	out := make([]T, len(sel))
	for i, idx := range sel {
		out[i] = c.data[idx]
	}
	return out
}
