// Package geom provides the pure geometric primitives the label-placement
// solver is built on: points, axis-aligned rectangles, polylines and
// polygons, plus the distance and intersection predicates the cost
// calculator needs (point/rect distance, segment crossing, polygon
// intersection fraction, centroid, ring minimum distance).
//
// Everything here is a pure function over value types; nothing in this
// package allocates an index or holds long-lived state.
package geom
