// Package pq implements a bounded, indexed binary min-heap keyed by
// integer candidate id and an integer priority key (conflict-overlap
// count). Unlike container/heap's lazy-duplicate style used elsewhere
// in this codebase's ancestry, this heap supports true O(log n)
// decrease-key via an id→slot side table, which the greedy initial
// solver (package solver) needs to keep conflict counts current as
// candidates are eliminated.
package pq
