// Package render turns a class's parameter model into the text of a
// __repr__ method.
//
// Rendering is deterministic: the same class name, parameter sequence and
// options always produce byte-identical lines. The produced lines carry no
// base indentation; the patcher indents them to match the class body where
// they are inserted.
package render

import (
	"fmt"
	"strings"

	"github.com/hargabyte/pyrepr/internal/signature"
)

// DefaultQualifiedName is the f-string fragment that evaluates to the
// module-qualified class name at runtime.
const DefaultQualifiedName = "{self.__class__.__module__}.{self.__class__.__name__}"

// DefaultKwargSplat is the placeholder rendered in place of a **kwargs
// parameter's contents. Keyword-variadic contents are not statically known,
// so they are never enumerated.
const DefaultKwargSplat = "..."

// Body is a rendered __repr__ method, one string per line.
type Body []string

// Options control rendering.
type Options struct {
	// QualifiedName is the expression rendered as the constructor name.
	// Empty means DefaultQualifiedName.
	QualifiedName string
	// KwargSplat is the placeholder for the **kwargs slot.
	// Empty means DefaultKwargSplat.
	KwargSplat string
	// IndentUnit is one indentation step, as the target file uses it.
	// Empty means four spaces.
	IndentUnit string
}

func (o Options) qualifiedName() string {
	if o.QualifiedName == "" {
		return DefaultQualifiedName
	}
	return o.QualifiedName
}

func (o Options) kwargSplat() string {
	if o.KwargSplat == "" {
		return DefaultKwargSplat
	}
	return o.KwargSplat
}

func (o Options) indentUnit() string {
	if o.IndentUnit == "" {
		return "    "
	}
	return o.IndentUnit
}

// Method renders the full __repr__ method for a class.
//
// Parameters appear in declaration order, except that a var-keyword
// parameter is always rendered last: it is folded into the trailing splat
// placeholder regardless of where it was declared. A class with no
// parameters besides self renders a bare <qualified-name>() expression.
func Method(className string, params []signature.Param, opts Options) Body {
	unit := opts.indentUnit()

	body := Body{
		"def __repr__(self) -> str:",
		fmt.Sprintf("%s\"\"\"Create a string (c)representation for %s.\"\"\"", unit, className),
		fmt.Sprintf("%sreturn (f'%s('", unit, opts.qualifiedName()),
	}

	var varKeyword *signature.Param
	for i := range params {
		p := params[i]
		if p.Kind == signature.VarKeyword {
			varKeyword = &params[i]
			continue
		}
		body = append(body, unit+unit+fragment(p))
	}
	if varKeyword != nil {
		body = append(body, fmt.Sprintf("%s%sf'**%s,'", unit, unit, opts.kwargSplat()))
	}

	body = append(body, unit+"')')")
	return body
}

// fragment renders the f-string fragment for one non-var-keyword parameter.
func fragment(p signature.Param) string {
	if p.Kind == signature.VarPositional {
		// Splice the stored sequence, each element repr-formatted.
		return fmt.Sprintf("f'*{\", \".join(repr(v) for v in self.%s)}, '", p.Name)
	}
	return fmt.Sprintf("f'%s={self.%s!r}, '", p.Name, p.Name)
}

// Indented returns the body with the given base indentation applied to
// every line.
func (b Body) Indented(indent string) []string {
	lines := make([]string, len(b))
	for i, line := range b {
		lines[i] = indent + line
	}
	return lines
}

// String joins the body into a single newline-separated string.
func (b Body) String() string {
	return strings.Join(b, "\n")
}
