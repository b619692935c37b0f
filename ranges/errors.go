package ranges

import "errors"

// Sentinel errors returned by [New].
//
// Use [errors.Is] for comparisons:
//
//	_, err := ranges.New(0, 5, -1)
//	if errors.Is(err, ranges.ErrIncompatibleStep) {
//	    // step points away from stop
//	}
var (
	// ErrZeroStep is returned when the step argument is zero.
	ErrZeroStep = errors.New("ranges: step must not be zero")

	// ErrIncompatibleStep is returned when the sign of the step disagrees
	// with the direction of travel from start to stop (for example, a
	// negative step with start < stop).
	ErrIncompatibleStep = errors.New("ranges: step direction is incompatible with start and stop")
)
