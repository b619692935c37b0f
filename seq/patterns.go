package seq

// Common member patterns accepted by [Assemble] via [AssembleOptions].
//
// A member pattern is a regular expression with a mandatory "index" capture
// group matching the numeral and an optional "padding" capture group matching
// its leading zeros. Every match of the pattern inside a string is a
// candidate numeral, so a single string can contribute to several
// collections:
//
//	cols, _, _ := seq.Assemble(names, seq.AssembleOptions{
//	    Patterns: []string{seq.PatternFrames, seq.PatternVersions},
//	})
const (
	// PatternDigits matches every run of digits. This is the default when
	// [AssembleOptions.Patterns] is nil.
	PatternDigits = `(?P<index>(?P<padding>0*)\d+)`

	// PatternFrames matches frame numerals in filenames such as
	// "shot.0001.exr": a dot, the numeral, a dot, then a non-digit
	// extension.
	PatternFrames = `\.(?P<index>(?P<padding>0*)\d+)\.\D+\d?$`

	// PatternVersions matches version numerals such as the "001" in
	// "shot_v001.exr".
	PatternVersions = `v(?P<index>(?P<padding>0*)\d+)`
)
