package nanoflow

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// parallelCutoff is the frame size below which derivations run serially;
// goroutine fan-out costs more than it saves on small frames.
const parallelCutoff = 1024

// parallelFor runs body once per event index, partitioned across the
// frame's configured parallelism. Bodies must be pure per event and write
// only their own event's slot, which keeps results bit-identical
// regardless of partitioning.
func (f *Frame) parallelFor(body func(i int)) {
	n := f.numEvents
	if f.parallelism <= 1 || n < parallelCutoff {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	chunk := (n + f.parallelism - 1) / f.parallelism

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				body(i)
			}
			return nil
		})
	}

	// Bodies cannot fail; Wait only joins the partitions.
	_ = g.Wait()
}

// Define1 registers output as a derived column computed by fn, invoked
// once per event with the value of the input column.
//
// fn must be pure: no shared state, no I/O. Unavailable inputs are
// represented by sentinel values (see package defaults), not by errors,
// so fn always produces a value.
func Define1[A, R any](f *Frame, output string, fn func(A) R, input string) error {
	start := time.Now()

	a, err := ColumnValues[A](f, input)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}

	out := make([]R, f.numEvents)
	f.parallelFor(func(i int) {
		out[i] = fn(a[i])
	})

	err = AddColumn(f, output, out)
	f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.LogDefine(output, []string{input}, f.numEvents)
	return nil
}

// Define2 registers output as a derived column computed by fn from two
// input columns, in the given order.
func Define2[A, B, R any](f *Frame, output string, fn func(A, B) R, input1, input2 string) error {
	start := time.Now()

	a, err := ColumnValues[A](f, input1)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	b, err := ColumnValues[B](f, input2)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}

	out := make([]R, f.numEvents)
	f.parallelFor(func(i int) {
		out[i] = fn(a[i], b[i])
	})

	err = AddColumn(f, output, out)
	f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.LogDefine(output, []string{input1, input2}, f.numEvents)
	return nil
}

// Define3 registers output as a derived column computed by fn from three
// input columns, in the given order.
func Define3[A, B, C, R any](f *Frame, output string, fn func(A, B, C) R, input1, input2, input3 string) error {
	start := time.Now()

	a, err := ColumnValues[A](f, input1)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	b, err := ColumnValues[B](f, input2)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	c, err := ColumnValues[C](f, input3)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}

	out := make([]R, f.numEvents)
	f.parallelFor(func(i int) {
		out[i] = fn(a[i], b[i], c[i])
	})

	err = AddColumn(f, output, out)
	f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.LogDefine(output, []string{input1, input2, input3}, f.numEvents)
	return nil
}

// Define4 registers output as a derived column computed by fn from four
// input columns, in the given order.
func Define4[A, B, C, D, R any](f *Frame, output string, fn func(A, B, C, D) R, input1, input2, input3, input4 string) error {
	start := time.Now()

	a, err := ColumnValues[A](f, input1)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	b, err := ColumnValues[B](f, input2)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	c, err := ColumnValues[C](f, input3)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}
	d, err := ColumnValues[D](f, input4)
	if err != nil {
		f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
		return err
	}

	out := make([]R, f.numEvents)
	f.parallelFor(func(i int) {
		out[i] = fn(a[i], b[i], c[i], d[i])
	})

	err = AddColumn(f, output, out)
	f.metrics.RecordDefine(output, f.numEvents, time.Since(start), err)
	if err != nil {
		return err
	}

	f.logger.LogDefine(output, []string{input1, input2, input3, input4}, f.numEvents)
	return nil
}
