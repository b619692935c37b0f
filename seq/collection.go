package seq

import (
	"fmt"
	"regexp"
	"strconv"

	"fortio.org/safecast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-sequence-utils/ranges"
)

// Collection represents a group of strings that share a common structure:
// a literal head, a numerical index and a literal tail. The indexes form a
// set; the head, tail and padding describe how each index is rendered into
// a member string.
//
//	col, _ := seq.NewCollection("file.", ".ext", 4, 1, 2, 3)
//	col.Members() // → ["file.0001.ext", "file.0002.ext", "file.0003.ext"]
//
// A padding of 0 means indexes are rendered without leading zeros; a
// padding of N means every index is rendered zero-filled to exactly N
// digits.
//
// # Matching members
//
// Each collection owns a member expression built from its head and tail.
// [Collection.Match] reports whether an arbitrary string fits the
// collection's structure and decodes its index; [Collection.ContainsMember]
// additionally requires the index to be present in the set.
//
// # Mutation
//
// Collections are mutable: [Collection.Add], [Collection.Remove],
// [Collection.RemoveStrict] and [Collection.Merge] change the index set in
// place, and SetHead/SetTail/SetPadding change the structure. Derived
// collections returned by [Collection.Holes], [Collection.Separate] and
// [Collection.Clone] are independent of their source.
//
// # Concurrency
//
// A Collection shared across goroutines needs external synchronization,
// for readers too: matching builds the cached member expression on first
// use. No method starts goroutines or blocks.
type Collection struct {
	head    string
	tail    string
	padding int
	indexes map[int]struct{}

	// Compiled member expression, built on demand and discarded whenever
	// head or tail changes.
	expr *regexp.Regexp
}

// Match holds the decoded parts of a member string matched against a
// collection's expression.
type Match struct {
	// Index is the numeral decoded to its integer value.
	Index int

	// Numeral is the digit run as written, leading zeros included.
	Numeral string

	// Padding is the run of leading zeros, empty when the numeral is
	// unpadded.
	Padding string
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewCollection creates a Collection from a head, a tail, a padding width
// and an optional initial set of indexes. Duplicate indexes are absorbed.
//
// Returns [ErrInvalidPadding] when padding is negative and
// [ErrInvalidIndex] when any index is negative.
func NewCollection(head, tail string, padding int, indexes ...int) (*Collection, error) {
	if padding < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadding, padding)
	}
	set := make(map[int]struct{}, len(indexes))
	for _, index := range indexes {
		if index < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
		}
		set[index] = struct{}{}
	}
	return newCollection(head, tail, padding, set), nil
}

// newCollection wraps an already validated index set, taking ownership of
// the map.
func newCollection(head, tail string, padding int, indexes map[int]struct{}) *Collection {
	return &Collection{head: head, tail: tail, padding: padding, indexes: indexes}
}

// Clone returns an independent copy of the collection.
func (c *Collection) Clone() *Collection {
	return newCollection(c.head, c.tail, c.padding, maps.Clone(c.indexes))
}

// ─────────────────────────────────────────────────────────────────────────────
// Structure accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the literal part preceding the index.
func (c *Collection) Head() string { return c.head }

// SetHead replaces the literal part preceding the index.
func (c *Collection) SetHead(head string) {
	c.head = head
	c.expr = nil
}

// Tail returns the literal part following the index.
func (c *Collection) Tail() string { return c.tail }

// SetTail replaces the literal part following the index.
func (c *Collection) SetTail(tail string) {
	c.tail = tail
	c.expr = nil
}

// Padding returns the index width, 0 when indexes are unpadded.
func (c *Collection) Padding() int { return c.padding }

// SetPadding replaces the index width. Returns [ErrInvalidPadding] when
// padding is negative.
func (c *Collection) SetPadding(padding int) error {
	if padding < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPadding, padding)
	}
	c.padding = padding
	return nil
}

// expression returns the compiled member expression for the current head
// and tail. The numeral group is lazy so that leading zeros are captured by
// the padding group. Compilation fails when head or tail is not valid
// UTF-8; such a collection matches nothing.
func (c *Collection) expression() (*regexp.Regexp, error) {
	if c.expr == nil {
		re, err := regexp.Compile(
			"^" + regexp.QuoteMeta(c.head) + `(?P<index>(?P<padding>0*)\d+?)` + regexp.QuoteMeta(c.tail) + "$",
		)
		if err != nil {
			return nil, err
		}
		c.expr = re
	}
	return c.expr, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

// Match tests value against the collection's member expression and padding.
// On success it returns the decoded parts and true.
//
// The padding discipline mirrors formatting: with padding 0 a numeral must
// not carry leading zeros (a bare "0" is fine); with padding N the numeral
// must be exactly N digits long. Numerals too large for int never match,
// and neither does anything when head or tail is not valid UTF-8.
func (c *Collection) Match(value string) (Match, bool) {
	re, err := c.expression()
	if err != nil {
		return Match{}, false
	}
	m := re.FindStringSubmatch(value)
	if m == nil {
		return Match{}, false
	}
	numeral := m[re.SubexpIndex("index")]
	pad := m[re.SubexpIndex("padding")]
	if c.padding == 0 {
		if pad != "" {
			return Match{}, false
		}
	} else if len(numeral) != c.padding {
		return Match{}, false
	}
	index, ok := parseIndex(numeral)
	if !ok {
		return Match{}, false
	}
	return Match{Index: index, Numeral: numeral, Padding: pad}, true
}

// parseIndex decodes a digit run into a non-negative int. Reports false for
// numerals that do not fit.
func parseIndex(numeral string) (int, bool) {
	u, err := strconv.ParseUint(numeral, 10, 64)
	if err != nil {
		return 0, false
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Index queries
// ─────────────────────────────────────────────────────────────────────────────

// Indexes returns the indexes in ascending order. The slice is a fresh copy
// on every call.
func (c *Collection) Indexes() []int {
	out := maps.Keys(c.indexes)
	slices.Sort(out)
	return out
}

// Members returns the formatted member for every index, in ascending index
// order.
func (c *Collection) Members() []string {
	indexes := c.Indexes()
	out := make([]string, len(indexes))
	for i, index := range indexes {
		out[i] = c.member(index)
	}
	return out
}

// member renders a single index with the collection's head, tail and
// padding.
func (c *Collection) member(index int) string {
	return fmt.Sprintf("%s%0*d%s", c.head, c.padding, index, c.tail)
}

// Count returns the number of indexes in the collection.
func (c *Collection) Count() int { return len(c.indexes) }

// IsEmpty reports whether the collection holds no indexes.
func (c *Collection) IsEmpty() bool { return len(c.indexes) == 0 }

// Contains reports whether index is present in the collection.
func (c *Collection) Contains(index int) bool {
	_, ok := c.indexes[index]
	return ok
}

// ContainsMember reports whether value is a current member: it must match
// the member expression and its index must be present.
func (c *Collection) ContainsMember(value string) bool {
	m, ok := c.Match(value)
	return ok && c.Contains(m.Index)
}

// First returns the smallest index together with a presence flag that is
// false when the collection is empty.
func (c *Collection) First() (int, bool) {
	first, ok := 0, false
	for index := range c.indexes {
		if !ok || index < first {
			first, ok = index, true
		}
	}
	return first, ok
}

// Last returns the largest index together with a presence flag that is
// false when the collection is empty.
func (c *Collection) Last() (int, bool) {
	last, ok := 0, false
	for index := range c.indexes {
		if !ok || index > last {
			last, ok = index, true
		}
	}
	return last, ok
}

// Each calls fn once per index in ascending order, passing the index and
// its formatted member.
func (c *Collection) Each(fn func(index int, member string)) {
	for _, index := range c.Indexes() {
		fn(index, c.member(index))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Structure queries
// ─────────────────────────────────────────────────────────────────────────────

// IsContiguous reports whether the indexes form an unbroken run. Empty and
// single-index collections are contiguous.
func (c *Collection) IsContiguous() bool {
	first, ok := c.First()
	if !ok {
		return true
	}
	last, _ := c.Last()
	return last-first+1 == len(c.indexes)
}

// Holes returns a new collection, sharing this collection's structure, that
// holds every index missing between the smallest and largest present
// indexes. Returns nil when there are no holes.
func (c *Collection) Holes() *Collection {
	first, ok := c.First()
	if !ok {
		return nil
	}
	last, _ := c.Last()
	holes := make(map[int]struct{})
	for index := range ranges.Span(first, last).All() {
		if !c.Contains(index) {
			holes[index] = struct{}{}
		}
	}
	if len(holes) == 0 {
		return nil
	}
	return newCollection(c.head, c.tail, c.padding, holes)
}

// Separate splits the collection into new collections of maximal
// consecutive runs, ordered by their smallest index. An empty collection
// yields a single empty collection.
func (c *Collection) Separate() []*Collection {
	indexes := c.Indexes()
	if len(indexes) == 0 {
		return []*Collection{newCollection(c.head, c.tail, c.padding, make(map[int]struct{}))}
	}
	var out []*Collection
	flush := func(from, to int) {
		run := make(map[int]struct{}, to-from+1)
		addSpan(run, from, to)
		out = append(out, newCollection(c.head, c.tail, c.padding, run))
	}
	start, prev := indexes[0], indexes[0]
	for _, index := range indexes[1:] {
		if index != prev+1 {
			flush(start, prev)
			start = index
		}
		prev = index
	}
	flush(start, prev)
	return out
}

// addSpan inserts the inclusive run from..to into set. Requires from <= to.
func addSpan(set map[int]struct{}, from, to int) {
	for index := range ranges.Span(from, to).All() {
		set[index] = struct{}{}
	}
	set[to] = struct{}{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// IsCompatible reports whether other shares this collection's head, tail
// and padding, so that the two can be merged. A nil other is never
// compatible.
func (c *Collection) IsCompatible(other *Collection) bool {
	return other != nil &&
		c.head == other.head &&
		c.tail == other.tail &&
		c.padding == other.padding
}

// Equal reports whether other is compatible and holds exactly the same
// indexes.
func (c *Collection) Equal(other *Collection) bool {
	return c.IsCompatible(other) && maps.Equal(c.indexes, other.indexes)
}
