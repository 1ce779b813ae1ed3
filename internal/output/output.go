// Package output renders the tool's terminal output: per-class change
// listings and colored unified diffs.
package output

import (
	"fmt"
	"io"

	"github.com/hargabyte/pyrepr/internal/engine"
)

// PrintChanges writes the applied per-class changes, one block per class:
// a headline naming the class, the method lines, and a trailing blank line.
// Skipped classes are not listed here; see PrintSkips.
func PrintChanges(w io.Writer, changes []engine.Change, action string) {
	for _, change := range changes {
		if !change.Status.Applied() {
			continue
		}
		fmt.Fprintf(w, "__repr__ %s for class: %s\n", action, change.ClassName)
		for _, line := range change.Lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

// PrintSkips writes one informational line per skipped class.
func PrintSkips(w io.Writer, path string, changes []engine.Change) {
	for _, change := range changes {
		if change.Status.Applied() {
			continue
		}
		fmt.Fprintf(w, "%s: class %s: %s\n", path, change.ClassName, change.Reason)
	}
}
