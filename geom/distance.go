package geom

import "math"

// DistanceToPoint returns the signed distance from the quad's border to
// point (px,py): negative when the point lies inside the quad, otherwise
// the Euclidean distance to the nearest edge. Feeds the obstacle-point
// penalty predicate (n=2 if inside, n=1 if within labelDistance).
func DistanceToPoint(q Quad, px, py float64) float64 {
	b := q.BoundingBox()
	if px >= b.MinX && px <= b.MaxX && py >= b.MinY && py <= b.MaxY {
		// Inside: report the negative distance to the closest edge.
		dx := math.Min(px-b.MinX, b.MaxX-px)
		dy := math.Min(py-b.MinY, b.MaxY-py)

		return -math.Min(dx, dy)
	}

	dx := math.Max(b.MinX-px, math.Max(0, px-b.MaxX))
	dy := math.Max(b.MinY-py, math.Max(0, py-b.MaxY))

	return math.Hypot(dx, dy)
}

// quadBorders returns the four border segments of a candidate rectangle
// in corner order 0-1-2-3-0.
func quadBorders(q Quad) [4][2]Point {
	var out [4][2]Point
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		out[i] = [2]Point{{X: q.X[i], Y: q.Y[i]}, {X: q.X[j], Y: q.Y[j]}}
	}

	return out
}

// SegmentsIntersect reports whether closed segments (a1,a2) and (b1,b2)
// cross or touch, using the standard orientation test.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear / touching cases: treat as crossing when a point of one
	// segment lies on the other segment's bounding box.
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}

	return false
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, q, r Point) bool {
	return r.X <= math.Max(p.X, q.X) && r.X >= math.Min(p.X, q.X) &&
		r.Y <= math.Max(p.Y, q.Y) && r.Y >= math.Min(p.Y, q.Y)
}

// CrossesLine reports whether any border of the candidate rectangle
// crosses any segment of the polyline (obstacle linestring penalty).
func CrossesLine(q Quad, line Polyline) bool {
	borders := quadBorders(q)
	for i := 0; i+1 < len(line.Points); i++ {
		for _, b := range borders {
			if SegmentsIntersect(b[0], b[1], line.Points[i], line.Points[i+1]) {
				return true
			}
		}
	}

	return false
}

// ringSegments returns the closed set of boundary segments for a ring.
func ringSegments(r Ring) [][2]Point {
	n := len(r.Points)
	if n < 2 {
		return nil
	}
	segs := make([][2]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, [2]Point{r.Points[i], r.Points[j]})
	}

	return segs
}

// CrossesRingBoundary reports whether any border of the candidate
// rectangle crosses the ring's boundary (obstacle polygon-boundary
// penalty).
func CrossesRingBoundary(q Quad, r Ring) bool {
	borders := quadBorders(q)
	for _, seg := range ringSegments(r) {
		for _, b := range borders {
			if SegmentsIntersect(b[0], b[1], seg[0], seg[1]) {
				return true
			}
		}
	}

	return false
}

// PointInRing reports whether p lies inside the (possibly non-convex)
// ring using the standard even-odd ray-casting rule. Points exactly on
// the boundary are treated as inside.
func PointInRing(p Point, r Ring) bool {
	n := len(r.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := r.Points[i], r.Points[j]
		if onSegment(pi, pj, p) && cross(pi, pj, p) == 0 {
			return true // boundary counts as inside
		}
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xint {
				inside = !inside
			}
		}
	}

	return inside
}

// PointInPolygon reports whether p lies inside the polygon's outer ring
// and outside every hole.
func PointInPolygon(p Point, poly Polygon) bool {
	if !PointInRing(p, poly.Outer) {
		return false
	}
	for _, h := range poly.Holes {
		if PointInRing(p, h) {
			return false
		}
	}

	return true
}

// IntersectsWithPolygon reports whether the candidate rectangle touches
// the polygon at all: either its boundary crosses the outer ring, or one
// of the rectangle's corners/center lies inside the polygon, or the
// polygon's own boundary dips inside the rectangle. Used for the
// PolygonWhole obstacle-avoidance mode.
func IntersectsWithPolygon(q Quad, poly Polygon) bool {
	if CrossesRingBoundary(q, poly.Outer) {
		return true
	}
	if PointInPolygon(q.Center(), poly) {
		return true
	}
	b := q.BoundingBox()
	for i := 0; i < 4; i++ {
		if PointInRing(Point{X: q.X[i], Y: q.Y[i]}, poly.Outer) {
			return true
		}
	}
	// A polygon fully contained within the candidate rectangle still
	// counts as an intersection even though no boundary segments cross.
	for _, p := range poly.Outer.Points {
		if p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY {
			return true
		}
	}

	return false
}

// PolygonIntersectionFraction estimates, via a regular sample grid over
// the candidate rectangle, the fraction (0..1) of the candidate's area
// that falls inside the polygon. Used to discretise the PolygonInterior
// obstacle cost into the 0..12 range.
func PolygonIntersectionFraction(q Quad, poly Polygon) float64 {
	const grid = 8 // 8x8 sample grid keeps this O(64) per (candidate,obstacle) pair
	b := q.BoundingBox()
	if b.Width() <= 0 || b.Height() <= 0 {
		return 0
	}
	inside := 0
	total := 0
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			x := b.MinX + (float64(i)+0.5)/float64(grid)*b.Width()
			y := b.MinY + (float64(j)+0.5)/float64(grid)*b.Height()
			total++
			if PointInPolygon(Point{X: x, Y: y}, poly) {
				inside++
			}
		}
	}
	if total == 0 {
		return 0
	}

	return float64(inside) / float64(total)
}

// Centroid computes the area-weighted centroid of the polygon's outer
// ring via the standard shoelace formula.
func Centroid(poly Polygon) Point {
	pts := poly.Outer.Points
	n := len(pts)
	if n == 0 {
		return Point{}
	}
	var areaSum, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cr := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		areaSum += cr
		cx += (pts[i].X + pts[j].X) * cr
		cy += (pts[i].Y + pts[j].Y) * cr
	}
	if areaSum == 0 {
		// Degenerate ring (collinear points): fall back to the
		// arithmetic mean of vertices.
		for _, p := range pts {
			cx += p.X
			cy += p.Y
		}

		return Point{X: cx / float64(n), Y: cy / float64(n)}
	}
	areaSum *= 0.5

	return Point{X: cx / (6 * areaSum), Y: cy / (6 * areaSum)}
}

// MinDistanceToRing returns the minimum Euclidean distance from p to any
// point on the ring's boundary (used for the polygon ring-distance cost:
// distance to the outer ring, the map extent, and each hole).
func MinDistanceToRing(p Point, r Ring) float64 {
	n := len(r.Points)
	if n == 0 {
		return math.Inf(1)
	}
	if n == 1 {
		return math.Hypot(p.X-r.Points[0].X, p.Y-r.Points[0].Y)
	}
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := distanceToSegment(p, r.Points[i], r.Points[j])
		if d < min {
			min = d
		}
	}

	return min
}

func distanceToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := a.X + t*dx
	projY := a.Y + t*dy

	return math.Hypot(p.X-projX, p.Y-projY)
}
