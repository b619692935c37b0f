package seq

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hasbyte1/go-sequence-utils/ranges"
)

// parseExpressions maps each placeholder to the capturing sub-pattern that
// recognizes it inside a parsed value.
var parseExpressions = map[string]string{
	"head":    `(?P<head>.*)`,
	"tail":    `(?P<tail>.*)`,
	"padding": `%(?P<padding>\d*)d`,
	"range":   `(?P<range>\d+-\d+)?`,
	"ranges":  `(?P<ranges>[\d ,\-]+)?`,
	"holes":   `(?P<holes>[\d ,\-]+)?`,
}

// Parse builds a [Collection] from a string in [DefaultPattern] form, the
// form produced by [Collection.String]:
//
//	col, err := seq.Parse("file.%04d.ext [1-3, 5]")
//
// Parse inverts String: Parse(col.String()) yields a collection equal to
// col, as long as head and tail are free of newlines (placeholders capture
// single-line text).
func Parse(value string) (*Collection, error) {
	return ParsePattern(DefaultPattern, value)
}

// ParsePattern builds a [Collection] from a string in the given pattern
// form. The pattern uses the same placeholders as [Collection.Format];
// literal text must match exactly, and the whole value must be consumed.
//
//	col, err := seq.ParsePattern("{head}{padding}{tail}", "file.%02d.ext")
//
// Placeholders bind as follows: {head} and {tail} capture arbitrary text,
// {padding} captures a "%0Nd" or "%d" token, {range} captures an inclusive
// "start-end" pair, and {ranges} and {holes} capture comma-separated runs
// of indexes and index pairs. Indexes named by {holes} are discarded after
// {range} and {ranges} are applied, wherever the placeholders appear.
//
// Returns [ErrBadPattern] when the pattern does not translate to a valid
// expression (for instance a repeated placeholder), [ErrPatternMismatch]
// when value does not have the pattern's shape, and
// [ErrInvalidRangeFormat] or [ErrInvalidNumber] when a captured range is
// malformed.
func ParsePattern(pattern, value string) (*Collection, error) {
	re, err := parseExpression(pattern)
	if err != nil {
		return nil, err
	}
	m := re.FindStringSubmatchIndex(value)
	if m == nil {
		return nil, fmt.Errorf("%w: %q does not match %q", ErrPatternMismatch, value, pattern)
	}
	group := func(name string) string {
		gi := re.SubexpIndex(name)
		if gi < 0 || m[2*gi] < 0 {
			return ""
		}
		return value[m[2*gi]:m[2*gi+1]]
	}

	padding := 0
	if token := group("padding"); token != "" {
		width, ok := parseIndex(token)
		if !ok {
			return nil, fmt.Errorf("%w: padding %q", ErrInvalidNumber, token)
		}
		padding = width
	}
	col := newCollection(group("head"), group("tail"), padding, make(map[int]struct{}))

	// Holes are discarded only after every range has been applied.
	for _, name := range []string{"range", "ranges"} {
		if content := group(name); content != "" {
			if err := eachRangeIndex(content, func(index int) {
				col.indexes[index] = struct{}{}
			}); err != nil {
				return nil, err
			}
		}
	}
	if content := group("holes"); content != "" {
		if err := eachRangeIndex(content, func(index int) {
			delete(col.indexes, index)
		}); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// parseExpression translates a format pattern into an anchored expression:
// literal text is quoted, placeholders substitute their capturing
// sub-patterns.
func parseExpression(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	last := 0
	seen := make(map[string]bool)
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		name := strings.ToLower(pattern[loc[2]:loc[3]])
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate placeholder {%s}", ErrBadPattern, name)
		}
		seen[name] = true
		b.WriteString(parseExpressions[name])
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return re, nil
}

// eachRangeIndex parses a comma-separated run of range tokens, "7" or
// "3-9" with inclusive bounds, calling fn for every named index in
// ascending order. A token whose end precedes its start names nothing.
func eachRangeIndex(content string, fn func(index int)) error {
	for _, part := range strings.Split(content, ",") {
		from, to, err := parseRangePart(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		if from > to {
			continue
		}
		for index := range ranges.Span(from, to).All() {
			fn(index)
		}
		fn(to)
	}
	return nil
}

// parseRangePart decodes a single range token into inclusive bounds: a
// bare index yields itself as both bounds, a pair must have exactly one
// hyphen with digits on both sides.
func parseRangePart(part string) (int, int, error) {
	first, rest, found := strings.Cut(part, "-")
	if !found {
		index, ok := parseIndex(part)
		if !ok {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, part)
		}
		return index, index, nil
	}
	if first == "" || rest == "" || strings.Contains(rest, "-") {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRangeFormat, part)
	}
	from, ok := parseIndex(first)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, first)
	}
	to, ok := parseIndex(rest)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, rest)
	}
	return from, to, nil
}
