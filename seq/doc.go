// Package seq groups strings that differ only by a numerical index, such
// as frame sequences or versioned file names, into [Collection] values,
// and converts collections to and from compact textual form.
//
// # Overview
//
// The central type is [Collection]: a literal head, a literal tail, a
// padding width, and a set of indexes. "file.0001.ext" through
// "file.0100.ext" collapse into head "file.", tail ".ext", padding 4 and
// indexes 1-100.
//
//	cols, remainder, _ := seq.Assemble([]string{
//	    "file.0001.ext", "file.0002.ext", "file.0003.ext", "notes.txt",
//	}, seq.AssembleOptions{})
//
//	fmt.Println(cols[0])  // "file.%04d.ext [1-3]"
//	fmt.Println(remainder) // ["notes.txt"]
//
// # Assembling
//
// [Assemble] scans arbitrary strings for numerals with a configurable set
// of member patterns ([PatternDigits], [PatternFrames], [PatternVersions],
// or any expression with an "index" capture group) and groups the matches
// into collections. Strings that join no collection are returned as the
// remainder in natural order.
//
// # Parsing and formatting
//
// [Collection.Format] renders a collection through a placeholder pattern
// and [Parse] / [ParsePattern] invert it:
//
//	col, _ := seq.Parse("file.%04d.ext [1-5, 8]")
//	col.Format("{head}{padding}{tail} holes: {holes}")
//
// # Mutating collections
//
// Indexes are added and removed through the [Item] union: a bare [Index],
// a [Member] string that must match the collection's expression, or a
// compatible [*Collection]. [Collection.Add] validates the whole call
// before changing anything; [Collection.Remove] is permissive while
// [Collection.RemoveStrict] stops at the first invalid item.
//
// # Errors
//
// All failures wrap a package sentinel ([ErrPatternMismatch],
// [ErrIncompatibleCollection], ...) and are classified with [errors.Is].
// Operations never panic on hostile input.
//
// Portability note: the collection model matches common sequence tooling
// in VFX pipelines, so heads, tails and "%04d"-style padding tokens can be
// exchanged as-is with Python tools built on the same conventions.
package seq
