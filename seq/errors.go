package seq

import "errors"

// Sentinel errors returned by Collection operations and the assemble/parse
// entry points. All errors produced by this package wrap one of these, so
// callers can classify failures with [errors.Is]:
//
//	if err := col.Add(seq.Index(-1)); errors.Is(err, seq.ErrInvalidIndex) {
//	    // reject negative frame numbers
//	}
var (
	// ErrInvalidPadding is returned when a collection is constructed or
	// mutated with a negative padding width.
	ErrInvalidPadding = errors.New("seq: padding must not be negative")

	// ErrInvalidIndex is returned when a negative index is added to a
	// collection.
	ErrInvalidIndex = errors.New("seq: index must not be negative")

	// ErrPatternMismatch is returned by [Parse] and [ParsePattern] when the
	// input string does not match the expected layout, and by
	// [Collection.Add] when a [Member] does not match the member expression.
	ErrPatternMismatch = errors.New("seq: value does not match pattern")

	// ErrInvalidItemType is returned by [Collection.Add],
	// [Collection.Remove] and [Collection.RemoveStrict] when given an item
	// that is not an [Index], [Member] or [*Collection].
	ErrInvalidItemType = errors.New("seq: invalid item type")

	// ErrIncompatibleCollection is returned when two collections with
	// different head, tail or padding are combined.
	ErrIncompatibleCollection = errors.New("seq: collections are not compatible")

	// ErrInvalidRangeFormat is returned by [Parse] and [ParsePattern] when a
	// range token is not of the form "start" or "start-end".
	ErrInvalidRangeFormat = errors.New("seq: invalid range format")

	// ErrInvalidNumber is returned when a numeral inside a parsed value
	// cannot be represented as an int.
	ErrInvalidNumber = errors.New("seq: invalid number")

	// ErrBadPattern is returned by [Assemble] when a member pattern is not a
	// valid regular expression or lacks the required "index" capture group,
	// and by [ParsePattern] when a layout cannot be compiled.
	ErrBadPattern = errors.New("seq: bad pattern")
)
