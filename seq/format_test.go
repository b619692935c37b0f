package seq_test

import "testing"

func TestFormatPlaceholders(t *testing.T) {
	col := mustCollection(t, "file_", ".txt", 2, 1, 2, 4, 5, 7)

	tests := []struct {
		pattern string
		want    string
	}{
		{"{head}", "file_"},
		{"{tail}", ".txt"},
		{"{padding}", "%02d"},
		{"{range}", "1-7"},
		{"{ranges}", "1-2, 4-5, 7"},
		{"{holes}", "3, 6"},
		{"{head}{padding}{tail}", "file_%02d.txt"},
	}
	for _, tt := range tests {
		if got := col.Format(tt.pattern); got != tt.want {
			t.Fatalf("Format(%q) = %q; want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	col := mustCollection(t, "file_", ".txt", 2, 1, 2, 4, 5, 7)
	if got := col.String(); got != "file_%02d.txt [1-2, 4-5, 7]" {
		t.Fatalf("String() = %q; want %q", got, "file_%02d.txt [1-2, 4-5, 7]")
	}
}

func TestFormatUnpadded(t *testing.T) {
	col := mustCollection(t, "v", "", 0, 1, 2, 3)
	if got := col.String(); got != "v%d [1-3]" {
		t.Fatalf("String() = %q; want %q", got, "v%d [1-3]")
	}
}

func TestFormatSingleIndex(t *testing.T) {
	col := mustCollection(t, "f", ".x", 0, 7)
	if got := col.Format("{range}|{ranges}"); got != "7|7" {
		t.Fatalf("Format = %q; want %q", got, "7|7")
	}
}

func TestFormatEmptyCollection(t *testing.T) {
	col := mustCollection(t, "f", ".x", 0)
	if got := col.Format("{range}|{ranges}|{holes}"); got != "||" {
		t.Fatalf("Format = %q; want %q", got, "||")
	}
	if got := col.String(); got != "f%d.x []" {
		t.Fatalf("String() = %q; want %q", got, "f%d.x []")
	}
}

func TestFormatNoHoles(t *testing.T) {
	col := mustCollection(t, "f", "", 0, 1, 2, 3)
	if got := col.Format("{holes}"); got != "" {
		t.Fatalf("Format({holes}) = %q; want empty", got)
	}
}

func TestFormatCaseInsensitivePlaceholders(t *testing.T) {
	col := mustCollection(t, "f.", ".x", 3, 1, 2)
	if got := col.Format("{HEAD}{Padding}{tail} [{RANGES}]"); got != "f.%03d.x [1-2]" {
		t.Fatalf("Format = %q; want %q", got, "f.%03d.x [1-2]")
	}
}

func TestFormatUnknownPlaceholders(t *testing.T) {
	col := mustCollection(t, "f", "", 0, 1)

	tests := []struct {
		pattern string
		want    string
	}{
		{"{frame}", "{frame}"},
		{"{ head }", "{ head }"},
		{"{head", "{head"},
		{"head}", "head}"},
		{"{}", "{}"},
		{"100% {head}", "100% f"},
	}
	for _, tt := range tests {
		if got := col.Format(tt.pattern); got != tt.want {
			t.Fatalf("Format(%q) = %q; want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestFormatRepeatedPlaceholder(t *testing.T) {
	col := mustCollection(t, "f", "", 0, 3)
	if got := col.Format("{range} and {range}"); got != "3 and 3" {
		t.Fatalf("Format = %q; want %q", got, "3 and 3")
	}
}
