package signature

import "fmt"

// PositionalOnlyError marks an __init__ signature that contains a
// positional-only parameter. It is a per-class skip condition, not a hard
// failure: callers leave the class untouched and continue with its siblings.
type PositionalOnlyError struct {
	// Param is the last parameter declared before the "/" separator.
	Param string
}

// Error implements the error interface.
func (e *PositionalOnlyError) Error() string {
	return fmt.Sprintf("unsupported signature: parameter %q is positional-only", e.Param)
}
