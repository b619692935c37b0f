package seq_test

import (
	"fmt"

	"github.com/hasbyte1/go-sequence-utils/seq"
)

func ExampleAssemble() {
	cols, remainder, _ := seq.Assemble([]string{
		"shot_001.exr", "shot_002.exr", "shot_003.exr", "notes.txt",
	}, seq.AssembleOptions{})

	for _, col := range cols {
		fmt.Println(col)
	}
	fmt.Println(remainder)
	// Output:
	// shot_%03d.exr [1-3]
	// [notes.txt]
}

func ExampleParse() {
	col, _ := seq.Parse("file.%04d.ext [1-3, 5]")

	fmt.Println(col.Indexes())
	fmt.Println(col.Members()[0])
	// Output:
	// [1 2 3 5]
	// file.0001.ext
}

func ExampleNewCollection() {
	col, _ := seq.NewCollection("file_", ".txt", 2, 1, 2, 3)

	fmt.Println(col.Members())
	// Output:
	// [file_01.txt file_02.txt file_03.txt]
}

func ExampleCollection_Add() {
	col, _ := seq.NewCollection("file.", ".ext", 4, 1)

	if err := col.Add(seq.Index(2), seq.Member("file.0003.ext")); err != nil {
		panic(err)
	}
	fmt.Println(col)
	// Output:
	// file.%04d.ext [1-3]
}

func ExampleCollection_Format() {
	col, _ := seq.NewCollection("file_", ".txt", 2, 1, 2, 4, 5, 7)

	fmt.Println(col.Format("{head}{padding}{tail} [{ranges}]"))
	fmt.Println(col.Format("missing: {holes}"))
	// Output:
	// file_%02d.txt [1-2, 4-5, 7]
	// missing: 3, 6
}

func ExampleCollection_Holes() {
	col, _ := seq.NewCollection("frame.", ".png", 0, 1, 4, 7)

	fmt.Println(col.Holes().Indexes())
	// Output:
	// [2 3 5 6]
}

func ExampleCollection_Separate() {
	col, _ := seq.NewCollection("f.", ".x", 0, 1, 2, 3, 7, 8)

	for _, part := range col.Separate() {
		fmt.Println(part)
	}
	// Output:
	// f.%d.x [1-3]
	// f.%d.x [7-8]
}
