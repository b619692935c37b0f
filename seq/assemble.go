package seq

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultMinItems is the smallest index count a collection assembled by
// [Assemble] must reach to be kept, when [AssembleOptions.MinItems] is
// left at zero.
const DefaultMinItems = 2

// AssembleOptions configures [Assemble]. The zero value is a valid default
// configuration.
type AssembleOptions struct {
	// Patterns holds the member patterns to scan with, each a regular
	// expression with a mandatory "index" capture group and an optional
	// "padding" capture group (see [PatternDigits], [PatternFrames],
	// [PatternVersions]).
	//
	// A nil Patterns means [PatternDigits] alone. A non-nil empty slice
	// disables scanning entirely: no collections are assembled and every
	// value lands in the remainder, in input order.
	Patterns []string

	// MinItems is the minimum number of indexes an assembled collection
	// needs to be kept; collections below it are dissolved into the
	// remainder. 0 means [DefaultMinItems].
	MinItems int

	// IgnoreCase makes pattern matching and head/tail grouping
	// case-insensitive. The assembled collections keep the head and tail
	// casing of the first member encountered.
	IgnoreCase bool

	// AssumePaddedWhenAmbiguous treats a kept collection whose smallest
	// and largest indexes render to the same number of digits as padded
	// to that width, even when no member carried a leading zero.
	AssumePaddedWhenAmbiguous bool
}

// DefaultAssembleOptions returns the options [Assemble] applies to a zero
// AssembleOptions, spelled out.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{MinItems: DefaultMinItems}
}

// bucket accumulates the indexes scanned for one (head, tail, width)
// grouping, remembering the first-seen casing for display.
type bucket struct {
	head    string
	tail    string
	width   int
	indexes map[int]struct{}
}

// bucketKey groups scanned numerals. head and tail are lowercased when
// assembling case-insensitively.
type bucketKey struct {
	head  string
	tail  string
	width int
}

// Assemble groups values into collections of strings that differ only by a
// numerical index. It returns the assembled collections and the remainder,
// the values that did not end up a member of any collection.
//
//	cols, rem, err := seq.Assemble([]string{
//	    "file.0001.ext", "file.0002.ext", "notes.txt",
//	}, seq.AssembleOptions{})
//	// cols → [file.%04d.ext [1-2]], rem → [notes.txt]
//
// Every match of every pattern inside a value is considered, so one value
// can join several collections. Matches are grouped by the text before the
// numeral, the text after it, and the numeral's padding width; a zero-padded
// group absorbs the unpadded indexes of matching width (so "999" and "1000"
// assemble alongside "0999"). Groups with fewer than MinItems indexes are
// dissolved: their members move to the remainder unless already present
// there or covered by a kept collection.
//
// Collections are returned in first-encounter order. The remainder is
// sorted in natural order, numerals compared by value ("file2" before
// "file10").
//
// Returns [ErrBadPattern] when a pattern does not compile or lacks an
// "index" capture group.
func Assemble(values []string, opts AssembleOptions) ([]*Collection, []string, error) {
	minItems := opts.MinItems
	if minItems == 0 {
		minItems = DefaultMinItems
	}

	patterns := opts.Patterns
	if patterns == nil {
		patterns = []string{PatternDigits}
	} else if len(patterns) == 0 {
		remainder := make([]string, len(values))
		copy(remainder, values)
		return nil, remainder, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		if opts.IgnoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
		}
		if re.SubexpIndex("index") < 0 {
			return nil, nil, fmt.Errorf("%w: %q lacks an index capture group", ErrBadPattern, pattern)
		}
		compiled = append(compiled, re)
	}

	// Scan all values with all patterns, bucketing every numeral match by
	// (head, tail, padding width).
	buckets := make(map[bucketKey]*bucket)
	var order []bucketKey
	var remainder []string

	for _, value := range values {
		matched := false
		for _, re := range compiled {
			indexGroup := re.SubexpIndex("index")
			paddingGroup := re.SubexpIndex("padding")
			for _, m := range re.FindAllStringSubmatchIndex(value, -1) {
				start, end := m[2*indexGroup], m[2*indexGroup+1]
				if start < 0 {
					continue
				}
				numeral := value[start:end]
				index, ok := parseIndex(numeral)
				if !ok {
					continue
				}
				head, tail := value[:start], value[end:]
				width := 0
				if paddingGroup >= 0 && m[2*paddingGroup] >= 0 && m[2*paddingGroup] != m[2*paddingGroup+1] {
					width = len(numeral)
				}

				key := bucketKey{head: head, tail: tail, width: width}
				if opts.IgnoreCase {
					key.head = strings.ToLower(head)
					key.tail = strings.ToLower(tail)
				}
				b, seen := buckets[key]
				if !seen {
					b = &bucket{head: head, tail: tail, width: width, indexes: make(map[int]struct{})}
					buckets[key] = b
					order = append(order, key)
				}
				b.indexes[index] = struct{}{}
				matched = true
			}
		}
		if !matched {
			remainder = append(remainder, value)
		}
	}

	// Merge across padding boundaries: an unpadded index whose digit count
	// equals a padded bucket's width migrates into that bucket.
	for _, key := range order {
		if key.width == 0 {
			continue
		}
		padded := buckets[key]
		unpadded, seen := buckets[bucketKey{head: key.head, tail: key.tail, width: 0}]
		if !seen {
			continue
		}
		for index := range unpadded.indexes {
			if len(strconv.Itoa(index)) == key.width {
				padded.indexes[index] = struct{}{}
				delete(unpadded.indexes, index)
			}
		}
	}

	// Build collections in first-encounter order, dropping buckets emptied
	// by the boundary merge.
	assembled := make([]*Collection, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		if len(b.indexes) == 0 {
			continue
		}
		assembled = append(assembled, newCollection(b.head, b.tail, b.width, b.indexes))
	}

	// Dissolve collections below the minimum size into the remainder,
	// skipping members the remainder or a kept collection already covers.
	kept := make([]*Collection, 0, len(assembled))
	var candidates []string
	for _, col := range assembled {
		if col.Count() >= minItems {
			kept = append(kept, col)
		} else {
			candidates = append(candidates, col.Members()...)
		}
	}
	for _, candidate := range candidates {
		if slices.Contains(remainder, candidate) {
			continue
		}
		covered := false
		for _, col := range kept {
			if col.ContainsMember(candidate) {
				covered = true
				break
			}
		}
		if !covered {
			remainder = append(remainder, candidate)
		}
	}

	if opts.AssumePaddedWhenAmbiguous {
		for _, col := range kept {
			if col.padding != 0 || col.IsEmpty() {
				continue
			}
			first, _ := col.First()
			last, _ := col.Last()
			if width := len(strconv.Itoa(first)); width == len(strconv.Itoa(last)) {
				col.padding = width
			}
		}
	}

	collate.New(language.Und, collate.Numeric).SortStrings(remainder)

	return kept, remainder, nil
}
