package rtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")
	// ErrCorrupted signals a violated structural tree invariant.
	ErrCorrupted = errors.New("rtree: structural invariant violated")
)
