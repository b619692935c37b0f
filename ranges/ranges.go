package ranges

import (
	"fmt"
	"iter"
	"math"

	"fortio.org/safecast"
)

// Range is an immutable arithmetic sequence of integers running from start
// towards stop (exclusive) in increments of step. The zero value is the
// empty sequence; useful values are built with [To], [Span] and [New].
//
// A Range holds only its bounds, so it is cheap to copy and safe to share
// between goroutines.
type Range struct {
	start int
	stop  int
	step  int
}

// To returns the range 0, 1, …, stop-1, or 0, -1, …, stop+1 when stop is
// negative. The step is inferred from the sign of stop, so To cannot fail.
func To(stop int) *Range {
	return Span(0, stop)
}

// Span returns the range start, …, stopping before stop, with a step of +1
// when start <= stop and -1 otherwise. The step always agrees with the
// direction of travel, so Span cannot fail.
func Span(start, stop int) *Range {
	step := 1
	if start > stop {
		step = -1
	}
	return &Range{start: start, stop: stop, step: step}
}

// New returns the range start, start+step, …, stopping before stop.
//
// It returns [ErrZeroStep] when step is zero, and [ErrIncompatibleStep] when
// the sign of step disagrees with the start→stop direction. When start equals
// stop the range is empty for any non-zero step.
func New(start, stop, step int) (*Range, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: range(%d, %d, 0)", ErrZeroStep, start, stop)
	}
	if (start < stop && step < 0) || (start > stop && step > 0) {
		return nil, fmt.Errorf("%w: range(%d, %d, %d)", ErrIncompatibleStep, start, stop, step)
	}
	return &Range{start: start, stop: stop, step: step}, nil
}

// Start returns the first bound of the range.
func (r *Range) Start() int { return r.start }

// Stop returns the exclusive final bound of the range.
func (r *Range) Stop() int { return r.stop }

// Step returns the increment between consecutive elements.
func (r *Range) Step() int { return r.step }

// Len returns the number of elements, without iterating. A range longer
// than the platform int reports [math.MaxInt].
func (r *Range) Len() int {
	if r.step == 0 || r.start == r.stop {
		return 0
	}
	// Magnitudes in uint64 so that spans near the int extremes stay exact.
	var span, step uint64
	if r.step > 0 {
		if r.start > r.stop {
			return 0
		}
		span = uint64(r.stop) - uint64(r.start)
		step = uint64(r.step)
	} else {
		if r.start < r.stop {
			return 0
		}
		span = uint64(r.start) - uint64(r.stop)
		step = uint64(-int64(r.step))
	}
	count := span / step
	if span%step != 0 {
		count++
	}
	n, err := safecast.Conv[int](count)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// IsEmpty reports whether the range contains no elements.
func (r *Range) IsEmpty() bool { return r.Len() == 0 }

// At returns the i-th element of the range. It returns the zero value and
// false when i is negative or beyond the last element.
func (r *Range) At(i int) (int, bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return r.start + i*r.step, true
}

// Contains reports whether v is an element of the range: within the bounds
// and on the stride. Pure arithmetic, no iteration.
func (r *Range) Contains(v int) bool {
	if r.Len() == 0 {
		return false
	}
	// Offset and stride as uint64 magnitudes, exact for spans near the
	// int extremes.
	var offset, step uint64
	if r.step > 0 {
		if v < r.start || v >= r.stop {
			return false
		}
		offset = uint64(v) - uint64(r.start)
		step = uint64(r.step)
	} else {
		if v > r.start || v <= r.stop {
			return false
		}
		offset = uint64(r.start) - uint64(v)
		step = uint64(-int64(r.step))
	}
	return offset%step == 0
}

// All returns an iterator over the elements in sequence order.
//
//	for v := range r.All() {
//	    // ...
//	}
func (r *Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.Len()
		v := r.start
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
			v += r.step
		}
	}
}

// Ints materializes the range as a slice.
func (r *Range) Ints() []int {
	out := make([]int, 0, r.Len())
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}

// String returns a debug representation in the style of Python's repr, for
// example "range(0, 5)" or "range(5, 0, -1)". It never materializes the
// elements. It implements [fmt.Stringer].
func (r *Range) String() string {
	if r.step == 1 {
		return fmt.Sprintf("range(%d, %d)", r.start, r.stop)
	}
	return fmt.Sprintf("range(%d, %d, %d)", r.start, r.stop, r.step)
}
