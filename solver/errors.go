package solver

import "errors"

// Sentinel errors for Problem construction and operation.
var (
	// ErrInvalidInput indicates NewProblem was given inconsistent
	// candidate/feature bookkeeping (startId/nbLp mismatch, or a length
	// mismatch between nbLp and inactive).
	ErrInvalidInput = errors.New("solver: inconsistent candidate bookkeeping")

	// ErrFeatureIndex indicates an out-of-range feature index was
	// referenced by a candidate or chain operation.
	ErrFeatureIndex = errors.New("solver: feature index out of range")
)
