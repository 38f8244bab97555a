package label

import "github.com/geolabel/pal/geom"

// GeometryKind identifies the shape a Feature or Obstacle carries.
type GeometryKind int

const (
	// Point features are labelled around a single location.
	Point GeometryKind = iota
	// Line features are labelled along or around a polyline.
	Line
	// Polygon features are labelled within or around an area.
	Polygon
)

// Arrangement selects the high-level placement strategy chosen per
// layer; only Free and Horizontal trigger the polygon ring/centroid
// cost refinement during finalisation.
type Arrangement int

const (
	// Other covers every arrangement not specially refined here
	// (around-point, along-line, and so on).
	Other Arrangement = iota
	// Free allows the candidate generator to propose positions anywhere
	// over the polygon.
	Free
	// Horizontal restricts candidates to axis-aligned placements.
	Horizontal
)

// ObstacleType selects how a polygon obstacle repels labels.
type ObstacleType int

const (
	// PolygonInterior scores candidates by the fraction of their area
	// that falls inside the polygon.
	PolygonInterior ObstacleType = iota
	// PolygonBoundary only penalises candidates that cross the
	// polygon's boundary.
	PolygonBoundary
	// PolygonWhole penalises any candidate that touches the polygon at
	// all.
	PolygonWhole
)

// OverlapHandling controls whether an unplaced feature may still be
// emitted as an overlapping placement during solution extraction.
type OverlapHandling int

const (
	// PreventOverlap hides a feature entirely when no conflict-free
	// candidate exists (unless AlwaysShow is set).
	PreventOverlap OverlapHandling = iota
	// AllowOverlapIfRequired permits falling back to the first
	// candidate even though it overlaps something.
	AllowOverlapIfRequired
)

// ObstacleSettings describes how an obstacle repels labels. Factor
// scales the raw computed penalty and must lie within [0,2].
type ObstacleSettings struct {
	Factor float64
	Type   ObstacleType // meaningful only for polygon obstacles
}

// Validate reports ErrInvalidObstacleFactor if Factor is out of range.
func (o ObstacleSettings) Validate() error {
	if o.Factor < 0 || o.Factor > 2 {
		return ErrInvalidObstacleFactor
	}

	return nil
}

// Obstacle is any geometry feature that repels labels away from it.
type Obstacle struct {
	FeatureIndex int // the owning feature's problem index, -1 if foreign
	Kind         GeometryKind
	PointAt      geom.Point
	Line         geom.Polyline
	Polygon      geom.Polygon
	Settings     ObstacleSettings
}

// Feature is a geographic object to be labelled. Index is its position
// in the solver's per-feature arrays (the problem's feature id);
// immutable for the duration of a solve.
type Feature struct {
	Index           int
	ID              int64
	Kind            GeometryKind
	Priority        float64 // [0,1], 0 = highest
	LabelDistance   float64
	Arrangement     Arrangement
	OverlapHandling OverlapHandling
	AlwaysShow      bool

	// Size metrics used by the size penalty during cost finalisation.
	Length float64 // meaningful for Line features
	Area   float64 // meaningful for Polygon features

	PolygonGeom  *geom.Polygon // set when Kind == Polygon
	SelfObstacle []geom.Ring   // interior holes treated as obstacles for ring-distance cost
}

// Validate checks the invariants a Feature must hold before it can be
// used to build a Problem.
func (f *Feature) Validate() error {
	if f.Priority < 0 || f.Priority > 1 {
		return ErrInvalidPriority
	}
	if f.Kind == Polygon && f.PolygonGeom == nil {
		return ErrNilPolygon
	}

	return nil
}

// Candidate is a potential labelled rectangle for one feature
// ("LabelPosition" in the original design). Id is stable and unique
// across all candidates produced for a Problem; cost is monotonically
// non-decreasing during finalisation, except where the discriminant
// clamp resets it to 0.0021.
type Candidate struct {
	ID                      int
	FeatureIndex            int
	Quad                    geom.Quad
	Cost                    float64
	NumOverlaps             int
	HasHardObstacleConflict bool
	ConflictsWithObstacle   bool
}

// BoundingBox is a convenience wrapper over the candidate's quad.
func (c Candidate) BoundingBox() geom.Rect { return c.Quad.BoundingBox() }

// FeatsBundle groups one feature with its ordered candidate list, as
// consumed by cost.FinalizeCandidateCosts. After finalisation,
// Candidates is sorted ascending by Cost.
type FeatsBundle struct {
	Feature    *Feature
	Priority   float64
	Candidates []Candidate
}

// ConflictOracle is the host-supplied, pure, symmetric, non-reflexive
// predicate deciding whether two candidates cannot both be chosen. The
// solver never caches its results.
type ConflictOracle interface {
	Conflicts(a, b *Candidate) bool
}

// ConflictOracleFunc adapts a plain function to the ConflictOracle
// interface.
type ConflictOracleFunc func(a, b *Candidate) bool

// Conflicts implements ConflictOracle.
func (f ConflictOracleFunc) Conflicts(a, b *Candidate) bool { return f(a, b) }
