package solver

import "errors"

var (
	// ErrUnknownAlgorithm indicates an algorithm name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrNilMap is returned when a Request carries no map.
	ErrNilMap = errors.New("solver: map is nil")
)
