package autodiff

import "errors"

var (
	// ErrCapacity is recorded when a node is created in a full graph.
	ErrCapacity = errors.New("autodiff: graph capacity exceeded")

	// ErrInvalidValue is recorded when an operand handle does not refer to a live node.
	ErrInvalidValue = errors.New("autodiff: invalid value handle")

	// ErrNonFinite is recorded in strict mode when a forward result is NaN or infinite.
	ErrNonFinite = errors.New("autodiff: non-finite value")
)
