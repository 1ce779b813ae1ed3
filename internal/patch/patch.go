// Package patch applies whole-line insertions and removals to source text.
//
// The patcher never rewrites part of a line. Every byte outside the edited
// spans is copied verbatim, including trailing whitespace and the file's
// line-ending style; inserted lines adopt the line ending of the line they
// are inserted after.
package patch

import (
	"sort"
	"strings"
)

// Insertion adds lines immediately after a source row.
type Insertion struct {
	// After is the 0-based row the lines are inserted after.
	After int
	// Lines are inserted verbatim, without line terminators.
	Lines []string
}

// Removal deletes the rows Start through End, inclusive (0-based).
type Removal struct {
	Start int
	End   int
}

// Apply computes the patched source. Edits must not overlap; they are
// applied bottom-up so earlier rows keep their indices, the same way the
// original line numbers stay valid while editing from the end of the file.
func Apply(source []byte, inserts []Insertion, removals []Removal) []byte {
	if len(inserts) == 0 && len(removals) == 0 {
		return source
	}

	lines := SplitLines(source)

	type edit struct {
		row       int
		insertion *Insertion
		removal   *Removal
	}
	edits := make([]edit, 0, len(inserts)+len(removals))
	for i := range inserts {
		edits = append(edits, edit{row: inserts[i].After, insertion: &inserts[i]})
	}
	for i := range removals {
		edits = append(edits, edit{row: removals[i].Start, removal: &removals[i]})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].row > edits[j].row })

	for _, e := range edits {
		switch {
		case e.insertion != nil:
			lines = applyInsertion(lines, *e.insertion)
		case e.removal != nil:
			lines = applyRemoval(lines, *e.removal)
		}
	}

	return []byte(strings.Join(lines, ""))
}

// applyInsertion splices the insertion's lines after its row.
func applyInsertion(lines []string, ins Insertion) []string {
	row := ins.After
	if row < 0 || row >= len(lines) {
		return lines
	}

	eol := lineEnding(lines[row])
	trailing := ""
	if eol == "" {
		// The anchor is the last line and has no terminator: it gains one,
		// and the final inserted line takes its place as the unterminated
		// last line of the file.
		eol = dominantLineEnding(lines)
		lines[row] += eol
	} else {
		trailing = eol
	}

	inserted := make([]string, len(ins.Lines))
	for i, line := range ins.Lines {
		term := eol
		if trailing == "" && i == len(ins.Lines)-1 {
			term = ""
		}
		inserted[i] = line + term
	}

	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:row+1]...)
	out = append(out, inserted...)
	out = append(out, lines[row+1:]...)
	return out
}

// applyRemoval drops the removal's rows.
func applyRemoval(lines []string, rem Removal) []string {
	start, end := rem.Start, rem.End
	if start < 0 {
		start = 0
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	if start > end {
		return lines
	}

	// A removal that reaches an unterminated final line leaves the new
	// final line unterminated as well; its terminator only separated it
	// from the removed rows.
	unterminatedEOF := end == len(lines)-1 && lineEnding(lines[end]) == ""

	out := append(lines[:start], lines[end+1:]...)
	if unterminatedEOF && len(out) > 0 {
		last := out[len(out)-1]
		out[len(out)-1] = strings.TrimSuffix(last, lineEnding(last))
	}
	return out
}

// SplitLines splits source into lines, each keeping its terminator.
// The last line may lack one. Both "\n" and "\r\n" endings are preserved.
func SplitLines(source []byte) []string {
	var lines []string
	text := string(source)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// lineEnding returns the terminator of a line: "\r\n", "\n", or "".
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return "\n"
	}
	return ""
}

// dominantLineEnding picks the file's prevailing terminator, defaulting
// to "\n" for empty input.
func dominantLineEnding(lines []string) string {
	crlf, lf := 0, 0
	for _, line := range lines {
		switch lineEnding(line) {
		case "\r\n":
			crlf++
		case "\n":
			lf++
		}
	}
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}

// IsBlank reports whether a line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
