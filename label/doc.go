// Package label defines the central Feature, ObstacleSettings, Candidate
// and FeatsBundle types the label-placement solver operates on, plus the
// ConflictOracle contract the host supplies.
//
// Candidates are owned exclusively by the caller's arena (a flat slice
// indexed by id, see package solver); this package only describes their
// shape and the sentinel errors raised when that shape is violated.
package label
