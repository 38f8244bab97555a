package rtree

import "errors"

// Sentinel errors for rtree operations.
var (
	// ErrNotFound indicates Remove was called with an id that is not
	// currently indexed.
	ErrNotFound = errors.New("rtree: id not found")

	// ErrDuplicateID indicates Insert was called with an id that is
	// already present in the index.
	ErrDuplicateID = errors.New("rtree: id already indexed")
)
