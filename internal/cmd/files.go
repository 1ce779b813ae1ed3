package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hargabyte/pyrepr/internal/engine"
	"github.com/hargabyte/pyrepr/internal/fileio"
	"github.com/hargabyte/pyrepr/internal/output"
	"github.com/hargabyte/pyrepr/internal/parser"
)

// outputMode selects where a file's transformation result goes.
type outputMode int

const (
	// modeShow prints the per-class changes to stdout.
	modeShow outputMode = iota
	// modeDiff prints a unified diff of the transformation.
	modeDiff
	// modeInline rewrites the file in place.
	modeInline
)

// selectOutputMode maps the --diff/--inline flags (mutually exclusive) to
// an output mode.
func selectOutputMode(diff, inline bool) outputMode {
	switch {
	case diff:
		return modeDiff
	case inline:
		return modeInline
	}
	return modeShow
}

// collectFiles expands the positional arguments into Python file paths.
// File arguments are taken as given; directory arguments are walked for
// .py/.pyi files, skipping entries matched by the exclude patterns.
func collectFiles(args []string, exclude []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && isExcluded(d.Name(), exclude) {
					return filepath.SkipDir
				}
				return nil
			}
			if isExcluded(d.Name(), exclude) {
				return nil
			}
			if parser.LanguageFromExtension(filepath.Ext(path)) == parser.Python {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}

	return files, nil
}

// isExcluded reports whether a file or directory name matches any exclude
// pattern. Patterns are plain names or filepath.Match globs.
func isExcluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == name {
			return true
		}
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// processFiles transforms each file independently. A file that fails to
// parse is reported on stderr and counted; the remaining files are still
// processed. The returned error is non-nil when at least one file failed,
// which makes the process exit non-zero.
func processFiles(files []string, mode engine.Mode, opts engine.Options, out outputMode, action string) error {
	failed := 0

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
			continue
		}

		result, err := engine.Transform(source, mode, opts)
		if err != nil {
			if pe, ok := err.(*parser.ParseError); ok && pe.File == "" {
				pe.File = path
			}
			fmt.Fprintln(os.Stderr, err)
			failed++
			continue
		}

		if verbose {
			output.PrintSkips(os.Stderr, path, result.Changes)
		}

		switch out {
		case modeDiff:
			if err := output.PrintDiff(os.Stdout, path, source, result.Output); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed++
			}
		case modeInline:
			if !result.Modified {
				continue
			}
			if err := fileio.WriteFile(path, result.Output); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed++
			}
		default:
			output.PrintChanges(os.Stdout, result.Changes, action)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	return nil
}
