package graph

import "errors"

// Error taxonomy for graph construction and resolution. All of these
// indicate a malformed graph or malformed input and end the current
// walk; callers match them with errors.Is.
var (
	// ErrNoRoot is returned when iteration is attempted on a graph
	// without a designated root.
	ErrNoRoot = errors.New("no root exists")

	// ErrRootConflict is returned when a second, different vertex is
	// assigned as root.
	ErrRootConflict = errors.New("graph already has a root")

	// ErrDuplicateDefaultPath is returned when a second unconditional
	// edge is added from the same source vertex.
	ErrDuplicateDefaultPath = errors.New("vertex already contains a defaulted path")

	// ErrAmbiguousPath is returned when more than one outgoing edge
	// matches the same answer.
	ErrAmbiguousPath = errors.New("ambiguous paths")

	// ErrTypeMismatch is returned when a comparison is evaluated
	// against a value whose type has no ordering relative to the
	// operand.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownConditionKind is returned when a condition descriptor
	// names a kind with no registered constructor.
	ErrUnknownConditionKind = errors.New("no builder found for condition kind")
)
