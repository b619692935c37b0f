package seq_test

import (
	"fmt"
	"testing"

	"github.com/hasbyte1/go-sequence-utils/seq"
)

// benchValues builds n file names spread over four padded sequences plus
// occasional noise, for assembler benchmarks.
func benchValues(n int) []string {
	values := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i%25 == 0:
			values = append(values, fmt.Sprintf("note_%c.txt", 'a'+rune(i%26)))
		default:
			values = append(values, fmt.Sprintf("seq%d.%04d.exr", i%4, i))
		}
	}
	return values
}

func BenchmarkAssemble(b *testing.B) {
	values := benchValues(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := seq.Assemble(values, seq.AssembleOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	col, _ := seq.NewCollection("file.", ".ext", 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		col.Match("file.0042.ext")
	}
}

func BenchmarkMembers(b *testing.B) {
	indexes := make([]int, 10_000)
	for i := range indexes {
		indexes[i] = i
	}
	col, _ := seq.NewCollection("file.", ".ext", 6, indexes...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		col.Members()
	}
}

func BenchmarkFormatFragmented(b *testing.B) {
	// Every other index present, so {ranges} renders thousands of runs.
	indexes := make([]int, 0, 5_000)
	for i := 0; i < 10_000; i += 2 {
		indexes = append(indexes, i)
	}
	col, _ := seq.NewCollection("file.", ".ext", 0, indexes...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		col.Format(seq.DefaultPattern)
	}
}

func BenchmarkParse(b *testing.B) {
	value := "file.%04d.ext [1-100, 200-300, 501]"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Parse(value); err != nil {
			b.Fatal(err)
		}
	}
}
