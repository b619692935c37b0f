// Package ranges provides a lazy, Python-style arithmetic sequence of
// integers: start, start+step, start+2*step, …, stopping before stop.
//
// # Creating a range
//
//	ranges.To(5)          // 0, 1, 2, 3, 4
//	ranges.To(-3)         // 0, -1, -2
//	ranges.Span(2, 8)     // 2, 3, 4, 5, 6, 7
//	ranges.Span(8, 2)     // 8, 7, 6, 5, 4, 3
//	ranges.New(5, 0, -1)  // 5, 4, 3, 2, 1
//
// [To] and [Span] infer a step of +1 or -1 from the direction of travel and
// can never fail. [New] takes an explicit step and rejects a zero step
// ([ErrZeroStep]) or a step pointing away from stop ([ErrIncompatibleStep]).
// A range with start == stop is empty for any non-zero step.
//
// # Laziness
//
// A [Range] stores only its three bounds; elements are produced on demand.
// [Range.Len], [Range.At] and [Range.Contains] are O(1) arithmetic,
// [Range.All] iterates without allocating, and only [Range.Ints] materializes
// a slice:
//
//	r := ranges.Span(1, 1_000_000)
//	r.Len()          // 999999, computed, not counted
//	r.Contains(500)  // true, no iteration
//	for v := range r.All() {
//	    // ...
//	}
//
// # Portability
//
// The semantics follow Python's built-in range with one deliberate
// difference: a step whose sign disagrees with the start→stop direction is
// reported as [ErrIncompatibleStep] instead of yielding an empty sequence,
// because a caller supplying such a step has almost always made an error.
package ranges
