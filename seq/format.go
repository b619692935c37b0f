package seq

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPattern is the pattern used by [Collection.String] and [Parse].
// A collection with head "file.", tail ".ext", padding 4 and indexes
// 1-3 and 5 renders as:
//
//	file.%04d.ext [1-3, 5]
const DefaultPattern = "{head}{padding}{tail} [{ranges}]"

// placeholderPattern recognizes the placeholder tokens in format and parse
// patterns, case-insensitively. Everything else is literal text.
var placeholderPattern = regexp.MustCompile(`(?i)\{(head|tail|padding|range|ranges|holes)\}`)

// Format renders the collection according to pattern. The recognized
// placeholders are:
//
//	{head}     literal head
//	{tail}     literal tail
//	{padding}  printf-style index format, "%04d" or "%d"
//	{range}    "first-last", or "first" for a single index, or ""
//	{ranges}   contiguous runs joined with ", ", e.g. "1-3, 5, 8-10"
//	{holes}    the missing interior indexes, in {ranges} form
//
// Placeholder names are case-insensitive and each is computed at most once
// per call, only when referenced. Unrecognized placeholders and stray
// braces are left verbatim.
func (c *Collection) Format(pattern string) string {
	cache := make(map[string]string, 4)
	return placeholderPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		name := strings.ToLower(token[1 : len(token)-1])
		value, ok := cache[name]
		if !ok {
			value = c.placeholder(name)
			cache[name] = value
		}
		return value
	})
}

// String renders the collection with [DefaultPattern]. It implements
// [fmt.Stringer].
func (c *Collection) String() string {
	return c.Format(DefaultPattern)
}

// placeholder computes the substitution for a single lowercased
// placeholder name.
func (c *Collection) placeholder(name string) string {
	switch name {
	case "head":
		return c.head
	case "tail":
		return c.tail
	case "padding":
		return c.paddingToken()
	case "range":
		return c.rangeToken()
	case "ranges":
		return c.rangesToken()
	case "holes":
		if holes := c.Holes(); holes != nil {
			return holes.rangesToken()
		}
		return ""
	}
	return ""
}

// paddingToken renders the index width as a printf verb, "%d" when
// unpadded.
func (c *Collection) paddingToken() string {
	if c.padding == 0 {
		return "%d"
	}
	return fmt.Sprintf("%%0%dd", c.padding)
}

// rangeToken renders the outer bounds: "first-last", a bare "first" when
// the collection holds a single index, "" when it is empty. Holes are not
// reflected; use rangesToken for an exact rendition.
func (c *Collection) rangeToken() string {
	first, ok := c.First()
	if !ok {
		return ""
	}
	last, _ := c.Last()
	if first == last {
		return strconv.Itoa(first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}

// rangesToken renders every contiguous run, joined with ", ".
func (c *Collection) rangesToken() string {
	if c.IsEmpty() {
		return ""
	}
	separated := c.Separate()
	if len(separated) == 1 {
		return separated[0].rangeToken()
	}
	tokens := make([]string, len(separated))
	for i, part := range separated {
		tokens[i] = part.rangeToken()
	}
	return strings.Join(tokens, ", ")
}
