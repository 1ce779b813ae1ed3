package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

var (
	removedColor = color.New(color.FgRed)
	addedColor   = color.New(color.FgGreen)
)

// PrintDiff writes a unified diff of the original and transformed content
// of one file. Deletions are colored red and additions green; coloring is
// suppressed when color output is disabled.
func PrintDiff(w io.Writer, path string, before, after []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("rendering diff for %s: %w", path, err)
	}
	if text == "" {
		return nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, removedColor.Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, addedColor.Sprint(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
