package transform

import "errors"

var (
	// ErrInvalidOperation is wrapped by errors returned for structural
	// edits the engine rejects, currently only replacing the tree root.
	ErrInvalidOperation = errors.New("invalid operation")

	// Stop aborts a traversal early when returned by a visitor.
	// Traverse treats it as a clean exit and returns nil.
	Stop = errors.New("stop traversal")
)
