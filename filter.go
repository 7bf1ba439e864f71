package nanoflow

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Filter1 evaluates pred once per event over one input column and stores
// the passing event indices as the named selection mask.
//
// The returned bitmap is the stored mask; callers must not mutate it.
func Filter1[A any](f *Frame, name string, pred func(A) bool, input string) (*roaring.Bitmap, error) {
	start := time.Now()

	a, err := ColumnValues[A](f, input)
	if err != nil {
		f.metrics.RecordFilter(name, 0, f.numEvents, time.Since(start), err)
		return nil, err
	}

	pass := make([]bool, f.numEvents)
	f.parallelFor(func(i int) {
		pass[i] = pred(a[i])
	})

	bm, err := f.storeMask(name, pass)
	f.metrics.RecordFilter(name, cardinality(bm), f.numEvents, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	f.logger.LogFilter(name, bm.GetCardinality(), f.numEvents)
	return bm, nil
}

// Filter2 evaluates pred once per event over two input columns, in the
// given order, and stores the passing event indices as the named mask.
func Filter2[A, B any](f *Frame, name string, pred func(A, B) bool, input1, input2 string) (*roaring.Bitmap, error) {
	start := time.Now()

	a, err := ColumnValues[A](f, input1)
	if err != nil {
		f.metrics.RecordFilter(name, 0, f.numEvents, time.Since(start), err)
		return nil, err
	}
	b, err := ColumnValues[B](f, input2)
	if err != nil {
		f.metrics.RecordFilter(name, 0, f.numEvents, time.Since(start), err)
		return nil, err
	}

	pass := make([]bool, f.numEvents)
	f.parallelFor(func(i int) {
		pass[i] = pred(a[i], b[i])
	})

	bm, err := f.storeMask(name, pass)
	f.metrics.RecordFilter(name, cardinality(bm), f.numEvents, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	f.logger.LogFilter(name, bm.GetCardinality(), f.numEvents)
	return bm, nil
}

// storeMask converts the per-event pass flags into a bitmap and registers
// it under name.
func (f *Frame) storeMask(name string, pass []bool) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i, ok := range pass {
		if ok {
			bm.Add(uint32(i))
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.masks[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrMaskExists, name)
	}
	f.masks[name] = bm
	return bm, nil
}

func cardinality(bm *roaring.Bitmap) uint64 {
	if bm == nil {
		return 0
	}
	return bm.GetCardinality()
}

// Mask returns the named selection mask.
// The returned bitmap is the stored mask; callers must not mutate it.
func (f *Frame) Mask(name string) (*roaring.Bitmap, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	bm, ok := f.masks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMaskNotFound, name)
	}
	return bm, nil
}

// CountPassing returns the number of events selected by the named mask.
func (f *Frame) CountPassing(name string) (uint64, error) {
	bm, err := f.Mask(name)
	if err != nil {
		return 0, err
	}
	return bm.GetCardinality(), nil
}

// MaskAnd stores the intersection of the named masks as output and
// returns it.
func (f *Frame) MaskAnd(output string, names ...string) (*roaring.Bitmap, error) {
	return f.combineMasks(output, roaring.FastAnd, names)
}

// MaskOr stores the union of the named masks as output and returns it.
func (f *Frame) MaskOr(output string, names ...string) (*roaring.Bitmap, error) {
	return f.combineMasks(output, roaring.FastOr, names)
}

func (f *Frame) combineMasks(output string, combine func(...*roaring.Bitmap) *roaring.Bitmap, names []string) (*roaring.Bitmap, error) {
	masks := make([]*roaring.Bitmap, 0, len(names))
	for _, name := range names {
		bm, err := f.Mask(name)
		if err != nil {
			return nil, err
		}
		masks = append(masks, bm)
	}

	bm := combine(masks...)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.masks[output]; ok {
		return nil, fmt.Errorf("%w: %q", ErrMaskExists, output)
	}
	f.masks[output] = bm
	return bm, nil
}
