package engine

// Status tags the outcome of processing one class.
type Status int

const (
	// StatusGenerated means a __repr__ was synthesized for the class.
	StatusGenerated Status = iota
	// StatusSkippedPositionalOnly means the initializer has a
	// positional-only parameter; no method can safely be generated.
	StatusSkippedPositionalOnly
	// StatusSkippedExisting means the class already defines __repr__ and
	// insertion was skipped to avoid a duplicate.
	StatusSkippedExisting
	// StatusRemoved means an existing __repr__ was excised.
	StatusRemoved
	// StatusNotFound means remove mode found no __repr__ in the class.
	StatusNotFound
)

// String returns a short human-readable tag.
func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusSkippedPositionalOnly:
		return "skipped (positional-only parameter)"
	case StatusSkippedExisting:
		return "skipped (__repr__ exists)"
	case StatusRemoved:
		return "removed"
	case StatusNotFound:
		return "not found"
	}
	return "unknown"
}

// Applied reports whether the outcome changed the source.
func (s Status) Applied() bool {
	return s == StatusGenerated || s == StatusRemoved
}

// Change records the outcome for a single class.
type Change struct {
	// ClassName is the class the outcome belongs to.
	ClassName string
	// Status tags what happened.
	Status Status
	// Lines holds the inserted method lines (add) or the removed method
	// lines (remove), indented as they appear in the file. Empty for skips.
	Lines []string
	// Reason explains a skip in one sentence. Empty for applied changes.
	Reason string
}
