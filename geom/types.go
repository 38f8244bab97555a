package geom

import "math"

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box with Min <= Max on both axes.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from two corners, normalising min/max order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	return Rect{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// Width returns the rectangle's extent on the X axis.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's extent on the Y axis.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Area returns the rectangle's area; zero for degenerate rectangles.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w < 0 || h < 0 {
		return 0
	}

	return w * h
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2.0, Y: (r.MinY + r.MaxY) / 2.0}
}

// Intersects reports whether r and o overlap, touching edges counted as
// overlap (consistent with the rtree range queries used by the solver).
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && r.MaxX >= o.MinX && r.MinY <= o.MaxY && r.MaxY >= o.MinY
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Enlargement returns the area increase incurred by unioning r with o,
// used by the rtree to choose the least-enlarging subtree on insert.
func (r Rect) Enlargement(o Rect) float64 {
	return r.Union(o).Area() - r.Area()
}

// Quad is a candidate label rectangle described by its four corners, in
// the same [0..3] corner ordering used throughout the solver
// (x[0..3]/y[0..3] in the original pal data model).
type Quad struct {
	X [4]float64
	Y [4]float64
}

// BoundingBox returns the axis-aligned bounding box of the four corners.
func (q Quad) BoundingBox() Rect {
	minX, maxX := q.X[0], q.X[0]
	minY, maxY := q.Y[0], q.Y[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, q.X[i])
		maxX = math.Max(maxX, q.X[i])
		minY = math.Min(minY, q.Y[i])
		maxY = math.Max(maxY, q.Y[i])
	}

	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Center returns the midpoint of the diagonal corners 0 and 2, matching
// the original ((x0+x2)/2, (y0+y2)/2) centre convention used for
// candidate ring/centroid distance costs.
func (q Quad) Center() Point {
	return Point{X: (q.X[0] + q.X[2]) / 2.0, Y: (q.Y[0] + q.Y[2]) / 2.0}
}

// Polyline is an ordered, open sequence of points.
type Polyline struct {
	Points []Point
}

// Ring is a closed sequence of points (first and last are implicitly
// connected); used for polygon outer rings, holes and the map extent.
type Ring struct {
	Points []Point
}

// Polygon is an outer Ring plus zero or more interior holes.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// BoundingBox returns the outer ring's bounding box.
func (p Polygon) BoundingBox() Rect {
	return ringBoundingBox(p.Outer)
}

func ringBoundingBox(r Ring) Rect {
	if len(r.Points) == 0 {
		return Rect{}
	}
	minX, maxX := r.Points[0].X, r.Points[0].X
	minY, maxY := r.Points[0].Y, r.Points[0].Y
	for _, p := range r.Points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// RectAsRing converts a Rect to a 4-point Ring, used to treat the map
// extent as just another ring when computing ring-distance costs.
func RectAsRing(r Rect) Ring {
	return Ring{Points: []Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}}
}
