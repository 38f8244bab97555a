package pq

import "errors"

// Sentinel errors for PriorityQueue operations.
var (
	// ErrFull indicates Insert was called on a queue already at capacity.
	// Callers treat this as "skip this element", not a fatal condition.
	ErrFull = errors.New("pq: queue is at capacity")

	// ErrNotFound indicates an operation referenced an id not currently
	// present in the queue.
	ErrNotFound = errors.New("pq: id not present in queue")

	// ErrDuplicateID indicates Insert was called with an id already
	// present in the queue.
	ErrDuplicateID = errors.New("pq: id already present in queue")
)
