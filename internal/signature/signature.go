// Package signature extracts the parameter model of Python class
// initializers from a parsed AST.
//
// For every class in a file the package produces a ClassUnit: the ordered
// parameter descriptors of its __init__ method (the implicit self excluded),
// the source location where a generated method would be inserted, and the
// location of an existing __repr__ if the class already has one.
package signature

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hargabyte/pyrepr/internal/parser"
)

// ParamKind classifies how a declared parameter may be supplied at call time.
type ParamKind int

const (
	// PositionalOrKeyword parameters may be passed by position or by name.
	PositionalOrKeyword ParamKind = iota
	// KeywordOnly parameters appear after a bare "*" or "*args" and must be
	// passed by name.
	KeywordOnly
	// PositionalOnly parameters appear before a "/" and can never be passed
	// by name.
	PositionalOnly
	// VarPositional is the "*args" catch-all.
	VarPositional
	// VarKeyword is the "**kwargs" catch-all.
	VarKeyword
)

// String returns the Python-facing name of the kind.
func (k ParamKind) String() string {
	switch k {
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case KeywordOnly:
		return "keyword-only"
	case PositionalOnly:
		return "positional-only"
	case VarPositional:
		return "var-positional"
	case VarKeyword:
		return "var-keyword"
	}
	return "unknown"
}

// Param describes one declared __init__ parameter.
// Order of Params in a ClassUnit is declaration order.
type Param struct {
	Name       string
	Kind       ParamKind
	HasDefault bool
}

// ClassUnit describes one class found in a source file, ready to be
// transformed. Rows are 0-based source line indices.
type ClassUnit struct {
	// Name is the class name.
	Name string
	// Params are the __init__ parameters in declaration order, self excluded.
	// Nil when the class has no literal __init__ definition or when the
	// signature is unsupported.
	Params []Param
	// Unsupported is non-nil when the __init__ signature contains a
	// positional-only parameter. Such a class is skipped, never an error.
	Unsupported *PositionalOnlyError
	// HasInit reports whether the class defines __init__ in source.
	// Classes relying on an inherited or generated initializer (e.g.
	// dataclasses) have no literal definition and are left alone.
	HasInit bool
	// InitEndRow is the last source row of the __init__ definition.
	InitEndRow int
	// BodyIndent is the indentation of the class body, taken verbatim from
	// the "def __init__" line. Generated methods reuse it.
	BodyIndent string
	// IndentUnit is one indentation step as the file itself uses it.
	IndentUnit string
	// HasRepr reports whether the class already defines __repr__.
	HasRepr bool
	// ReprStartRow and ReprEndRow delimit the existing __repr__ definition,
	// decorators included. Only meaningful when HasRepr is true.
	ReprStartRow int
	ReprEndRow   int
}

// initMethodName and reprMethodName are the special methods the engine
// inspects and synthesizes.
const (
	initMethodName = "__init__"
	reprMethodName = "__repr__"
)

// fallbackIndentUnit is used when the file's own indent step cannot be
// derived (e.g. a one-line class body).
const fallbackIndentUnit = "    "

// Extract returns one ClassUnit per class definition in the parse result,
// in document order. Nested classes yield their own units.
func Extract(res *parser.ParseResult) []ClassUnit {
	var units []ClassUnit

	lines := strings.Split(string(res.Source), "\n")
	classNodes := res.FindNodesByType(parser.NodeClassDefinition)
	for _, classNode := range classNodes {
		unit := extractClass(res, classNode, lines)
		if unit != nil {
			units = append(units, *unit)
		}
	}

	return units
}

// extractClass builds the ClassUnit for a single class_definition node.
func extractClass(res *parser.ParseResult, classNode *sitter.Node, lines []string) *ClassUnit {
	nameNode := classNode.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	unit := &ClassUnit{
		Name: res.NodeText(nameNode),
	}

	blockNode := findChildByType(classNode, parser.NodeBlock)
	if blockNode == nil {
		return unit
	}

	classIndent := lineIndent(lines, int(classNode.StartPoint().Row))

	for i := uint32(0); i < blockNode.ChildCount(); i++ {
		child := blockNode.Child(int(i))
		wrapper := child
		fn := child
		if child.Type() == parser.NodeDecoratedDefinition {
			fn = findChildByType(child, parser.NodeFunctionDefinition)
			if fn == nil {
				continue
			}
		}
		if fn.Type() != parser.NodeFunctionDefinition {
			continue
		}

		fnName := res.NodeText(fn.ChildByFieldName("name"))
		switch fnName {
		case initMethodName:
			unit.HasInit = true
			unit.InitEndRow = int(fn.EndPoint().Row)
			unit.BodyIndent = lineIndent(lines, int(fn.StartPoint().Row))
			unit.IndentUnit = indentUnit(unit.BodyIndent, classIndent)
			params, err := ExtractParams(res, findChildByType(fn, parser.NodeParameters))
			if err != nil {
				unit.Unsupported = err
			} else {
				unit.Params = params
			}
		case reprMethodName:
			unit.HasRepr = true
			unit.ReprStartRow = int(wrapper.StartPoint().Row)
			unit.ReprEndRow = int(fn.EndPoint().Row)
		}
	}

	return unit
}

// ExtractParams converts a tree-sitter parameters node into the ordered
// parameter model, excluding the leading instance parameter (self).
//
// The presence of any positional-only parameter makes the whole signature
// unsupported: a representation built from name=value pairs cannot express
// positional-only call syntax, so the caller skips the class instead of
// generating a method that could not reconstruct the object.
func ExtractParams(res *parser.ParseResult, paramsNode *sitter.Node) ([]Param, *PositionalOnlyError) {
	if paramsNode == nil {
		return nil, nil
	}

	var params []Param
	keywordOnly := false
	skippedSelf := false

	for i := uint32(0); i < paramsNode.ChildCount(); i++ {
		child := paramsNode.Child(int(i))

		// An annotated splat ("*args: int", "**kwargs: str") parses as a
		// typed_parameter wrapping the splat pattern; classify it by the
		// wrapped pattern, not the wrapper.
		childType := child.Type()
		splat := child
		if childType == parser.NodeTypedParameter {
			if inner := findChildByType(child, parser.NodeListSplatPattern); inner != nil {
				childType, splat = parser.NodeListSplatPattern, inner
			} else if inner := findChildByType(child, parser.NodeDictionarySplatPattern); inner != nil {
				childType, splat = parser.NodeDictionarySplatPattern, inner
			}
		}

		switch childType {
		case parser.NodeIdentifier, parser.NodeTypedParameter,
			parser.NodeDefaultParameter, parser.NodeTypedDefaultParameter:
			name := parameterName(res, child)
			if name == "" {
				continue
			}
			if !skippedSelf {
				skippedSelf = true
				continue
			}
			kind := PositionalOrKeyword
			if keywordOnly {
				kind = KeywordOnly
			}
			hasDefault := childType == parser.NodeDefaultParameter ||
				childType == parser.NodeTypedDefaultParameter
			params = append(params, Param{Name: name, Kind: kind, HasDefault: hasDefault})

		case parser.NodeListSplatPattern:
			keywordOnly = true
			if name := parameterName(res, splat); name != "" {
				params = append(params, Param{Name: name, Kind: VarPositional})
			}

		case parser.NodeKeywordSeparator:
			keywordOnly = true

		case parser.NodeDictionarySplatPattern:
			if name := parameterName(res, splat); name != "" {
				params = append(params, Param{Name: name, Kind: VarKeyword})
			}

		case parser.NodePositionalSeparator:
			// Everything declared before "/" is positional-only, the
			// implicit self included.
			name := "self"
			if len(params) > 0 {
				name = params[len(params)-1].Name
			}
			return nil, &PositionalOnlyError{Param: name}
		}
	}

	return params, nil
}

// parameterName returns the declared name of a parameter node. For plain
// identifiers the node itself is the name; for typed, defaulted and splat
// parameters it is the first identifier child.
func parameterName(res *parser.ParseResult, node *sitter.Node) string {
	if node.Type() == parser.NodeIdentifier {
		return res.NodeText(node)
	}
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if child.Type() == parser.NodeIdentifier {
			return res.NodeText(child)
		}
	}
	return ""
}

// findChildByType finds the first direct child node of the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// lineIndent returns the leading whitespace of the given source row.
func lineIndent(lines []string, row int) string {
	if row < 0 || row >= len(lines) {
		return ""
	}
	line := lines[row]
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// indentUnit derives one indentation step from the difference between the
// class body indent and the class's own indent.
func indentUnit(bodyIndent, classIndent string) string {
	if strings.HasPrefix(bodyIndent, classIndent) && len(bodyIndent) > len(classIndent) {
		return bodyIndent[len(classIndent):]
	}
	return fallbackIndentUnit
}
