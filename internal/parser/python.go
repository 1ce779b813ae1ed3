package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// newPythonParser creates a tree-sitter parser configured for Python.
func newPythonParser() (*sitter.Parser, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return parser, nil
}

// Tree-sitter node types for the Python constructs the engine cares about.
const (
	// NodeClassDefinition is a "class X:" definition.
	NodeClassDefinition = "class_definition"
	// NodeFunctionDefinition is a "def f():" definition.
	NodeFunctionDefinition = "function_definition"
	// NodeDecoratedDefinition wraps a definition preceded by decorators.
	NodeDecoratedDefinition = "decorated_definition"
	// NodeBlock is an indented suite of statements.
	NodeBlock = "block"
	// NodeParameters is the parenthesized parameter list of a definition.
	NodeParameters = "parameters"
)

// Parameter-list node types, one per declared-parameter syntax.
const (
	// NodeIdentifier is a plain parameter: "name".
	NodeIdentifier = "identifier"
	// NodeTypedParameter is an annotated parameter: "name: type".
	NodeTypedParameter = "typed_parameter"
	// NodeDefaultParameter is a parameter with a default: "name=value".
	NodeDefaultParameter = "default_parameter"
	// NodeTypedDefaultParameter is "name: type = value".
	NodeTypedDefaultParameter = "typed_default_parameter"
	// NodeListSplatPattern is a variadic-positional parameter: "*args".
	NodeListSplatPattern = "list_splat_pattern"
	// NodeDictionarySplatPattern is a variadic-keyword parameter: "**kwargs".
	NodeDictionarySplatPattern = "dictionary_splat_pattern"
	// NodeKeywordSeparator is the bare "*" marker; parameters after it are
	// keyword-only.
	NodeKeywordSeparator = "keyword_separator"
	// NodePositionalSeparator is the "/" marker; parameters before it are
	// positional-only.
	NodePositionalSeparator = "positional_separator"
)
