package patch

import (
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "empty",
			source: "",
			want:   nil,
		},
		{
			name:   "single line with newline",
			source: "a\n",
			want:   []string{"a\n"},
		},
		{
			name:   "single line without newline",
			source: "a",
			want:   []string{"a"},
		},
		{
			name:   "mixed endings preserved",
			source: "a\r\nb\nc",
			want:   []string{"a\r\n", "b\n", "c"},
		},
		{
			name:   "blank lines kept",
			source: "a\n\nb\n",
			want:   []string{"a\n", "\n", "b\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines([]byte(tt.source))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestApplyInsertion(t *testing.T) {
	source := "one\ntwo\nthree\n"

	got := Apply([]byte(source), []Insertion{{After: 1, Lines: []string{"x", "y"}}}, nil)

	want := "one\ntwo\nx\ny\nthree\n"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyInsertionAdoptsCRLF(t *testing.T) {
	source := "one\r\ntwo\r\n"

	got := Apply([]byte(source), []Insertion{{After: 0, Lines: []string{"x"}}}, nil)

	want := "one\r\nx\r\ntwo\r\n"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyInsertionAtUnterminatedLastLine(t *testing.T) {
	source := "one\ntwo"

	got := Apply([]byte(source), []Insertion{{After: 1, Lines: []string{"x", "y"}}}, nil)

	// The old last line gains a terminator; the file still ends without one.
	want := "one\ntwo\nx\ny"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyRemoval(t *testing.T) {
	source := "one\ntwo\nthree\nfour\n"

	got := Apply([]byte(source), nil, []Removal{{Start: 1, End: 2}})

	want := "one\nfour\n"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyRemovalThroughUnterminatedLastLine(t *testing.T) {
	source := "one\ntwo\nthree"

	got := Apply([]byte(source), nil, []Removal{{Start: 1, End: 2}})

	// The new last line sheds the terminator it only needed while more
	// lines followed.
	want := "one"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyMultipleEditsBottomUp(t *testing.T) {
	source := "a\nb\nc\nd\ne\n"

	got := Apply([]byte(source),
		[]Insertion{{After: 0, Lines: []string{"x"}}},
		[]Removal{{Start: 3, End: 3}})

	want := "a\nx\nb\nc\ne\n"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestApplyNoEdits(t *testing.T) {
	source := []byte("unchanged\n")

	got := Apply(source, nil, nil)

	if string(got) != string(source) {
		t.Error("expected source to pass through unchanged")
	}
}

func TestApplyPreservesUntouchedBytes(t *testing.T) {
	source := "keep  \t trailing \n\n  # comment\t\nlast\n"

	got := Apply([]byte(source), []Insertion{{After: 3, Lines: []string{"new"}}}, nil)

	if !strings.HasPrefix(string(got), source[:len(source)]) {
		t.Errorf("bytes before the insertion span were altered: %q", string(got))
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"\n", true},
		{"  \t \r\n", true},
		{"x\n", false},
		{"    pass\n", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
