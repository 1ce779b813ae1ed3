// Package engine transforms a single Python source file: it parses the
// file, extracts each class's initializer signature, and inserts or removes
// __repr__ methods, producing the new file content plus a per-class record
// of what happened.
//
// Per-class conditions (unsupported signature, existing method, nothing to
// remove) are tagged outcomes, never errors: one class's limitation does not
// abort its siblings. Only a whole-file structural parse failure is fatal
// for that file.
package engine

import (
	"bytes"
	"strings"

	"github.com/hargabyte/pyrepr/internal/parser"
	"github.com/hargabyte/pyrepr/internal/patch"
	"github.com/hargabyte/pyrepr/internal/render"
	"github.com/hargabyte/pyrepr/internal/signature"
)

// Mode selects the transformation direction.
type Mode int

const (
	// ModeAdd inserts a __repr__ after each class's __init__.
	ModeAdd Mode = iota
	// ModeRemove excises existing __repr__ methods.
	ModeRemove
)

// Options configure a transformation.
type Options struct {
	// KwargSplat is the placeholder text for **kwargs slots.
	// Empty means render.DefaultKwargSplat.
	KwargSplat string
	// QualifiedName overrides the qualified-name expression rendered as the
	// constructor. Empty means render.DefaultQualifiedName.
	QualifiedName string
}

// Result is the outcome of transforming one file.
type Result struct {
	// Output is the full new source text. Equal to the input when nothing
	// changed.
	Output []byte
	// Changes records the per-class outcomes in document order.
	Changes []Change
	// Modified reports whether Output differs from the input.
	Modified bool
}

// Transform applies the given mode to the source text of one Python file.
// It returns a *parser.ParseError when the file is not structurally valid;
// in that case the source is not modified.
func Transform(source []byte, mode Mode, opts Options) (*Result, error) {
	p, err := parser.NewParser(parser.Python)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	res, err := p.Parse(source)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if res.HasErrors() {
		return nil, res.FirstError()
	}

	units := signature.Extract(res)
	lines := patch.SplitLines(source)

	var (
		inserts  []patch.Insertion
		removals []patch.Removal
		changes  []Change
	)

	for _, unit := range units {
		switch mode {
		case ModeAdd:
			change, ins := planAdd(unit, opts)
			if change != nil {
				changes = append(changes, *change)
			}
			if ins != nil {
				inserts = append(inserts, *ins)
			}
		case ModeRemove:
			change, rem := planRemove(unit, lines)
			if change != nil {
				changes = append(changes, *change)
			}
			if rem != nil {
				removals = append(removals, *rem)
			}
		}
	}

	output := patch.Apply(source, inserts, removals)
	return &Result{
		Output:   output,
		Changes:  changes,
		Modified: !bytes.Equal(output, source),
	}, nil
}

// planAdd decides what to do with one class in add mode.
func planAdd(unit signature.ClassUnit, opts Options) (*Change, *patch.Insertion) {
	if !unit.HasInit {
		// No literal __init__ in source (inherited or generated
		// initializer); nothing to base a representation on.
		return nil, nil
	}
	if unit.Unsupported != nil {
		return &Change{
			ClassName: unit.Name,
			Status:    StatusSkippedPositionalOnly,
			Reason:    unit.Unsupported.Error(),
		}, nil
	}
	if unit.HasRepr {
		return &Change{
			ClassName: unit.Name,
			Status:    StatusSkippedExisting,
			Reason:    "__repr__ already defined",
		}, nil
	}

	body := render.Method(unit.Name, unit.Params, render.Options{
		QualifiedName: opts.QualifiedName,
		KwargSplat:    opts.KwargSplat,
		IndentUnit:    unit.IndentUnit,
	})
	indented := body.Indented(unit.BodyIndent)

	insertLines := make([]string, 0, len(indented)+1)
	insertLines = append(insertLines, "")
	insertLines = append(insertLines, indented...)

	return &Change{
			ClassName: unit.Name,
			Status:    StatusGenerated,
			Lines:     indented,
		}, &patch.Insertion{
			After: unit.InitEndRow,
			Lines: insertLines,
		}
}

// planRemove decides what to do with one class in remove mode.
func planRemove(unit signature.ClassUnit, lines []string) (*Change, *patch.Removal) {
	if !unit.HasRepr {
		return &Change{
			ClassName: unit.Name,
			Status:    StatusNotFound,
			Reason:    "no __repr__ defined",
		}, nil
	}

	start := unit.ReprStartRow
	// Take exactly one preceding blank separator line with the block.
	if start > 0 && start-1 < len(lines) && patch.IsBlank(lines[start-1]) {
		start--
	}

	removed := make([]string, 0, unit.ReprEndRow-unit.ReprStartRow+1)
	for row := unit.ReprStartRow; row <= unit.ReprEndRow && row < len(lines); row++ {
		removed = append(removed, strings.TrimRight(lines[row], "\r\n"))
	}

	return &Change{
			ClassName: unit.Name,
			Status:    StatusRemoved,
			Lines:     removed,
		}, &patch.Removal{
			Start: start,
			End:   unit.ReprEndRow,
		}
}
