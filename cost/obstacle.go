package cost

import (
	"math"

	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
)

// priorityConflictTolerance is the epsilon used when comparing the
// feature's derived priority against the obstacle factor under engine
// v2 (upstream: qgsDoubleNear(..., 0.001)).
const priorityConflictTolerance = 1e-3

// AddObstacleCostPenalty scores a single (candidate, obstacle) pair and
// accumulates the resulting penalty onto lp.Cost in place. feature is
// the candidate's owning feature (supplies label distance and
// priority); version selects whether the engine-v2 hard-conflict check
// runs.
func AddObstacleCostPenalty(lp *label.Candidate, feature *label.Feature, obstacle *label.Obstacle, version EngineVersion) {
	n := obstaclePenaltyMagnitude(lp, feature, obstacle)

	obstacleCost := obstacle.Settings.Factor * float64(n)
	if n > 0 {
		lp.ConflictsWithObstacle = true
	}

	if version == PlacementEngineVersion2 && n > 0 {
		priority := 2 * (1 - feature.Priority)
		obstaclePriority := obstacle.Settings.Factor
		if priority < obstaclePriority && !nearlyEqual(priority, obstaclePriority, priorityConflictTolerance) {
			lp.HasHardObstacleConflict = true
		}
	}

	lp.Cost += obstacleCost
}

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// obstaclePenaltyMagnitude computes the raw, unscaled penalty n,
// before the obstacle factor is applied.
func obstaclePenaltyMagnitude(lp *label.Candidate, feature *label.Feature, obstacle *label.Obstacle) int {
	switch obstacle.Kind {
	case label.Point:
		d := geom.DistanceToPoint(lp.Quad, obstacle.PointAt.X, obstacle.PointAt.Y)
		switch {
		case d < 0:
			return 2
		case d < feature.LabelDistance:
			return 1
		default:
			return 0
		}

	case label.Line:
		if geom.CrossesLine(lp.Quad, obstacle.Line) {
			return 1
		}

		return 0

	case label.Polygon:
		switch obstacle.Settings.Type {
		case label.PolygonInterior:
			return polygonIntersectionCost(lp.Quad, obstacle.Polygon)
		case label.PolygonBoundary:
			if geom.CrossesRingBoundary(lp.Quad, obstacle.Polygon.Outer) {
				return 6
			}

			return 0
		case label.PolygonWhole:
			if geom.IntersectsWithPolygon(lp.Quad, obstacle.Polygon) {
				return 12
			}

			return 0
		}
	}

	return 0
}

// polygonIntersectionCost discretises the label-area-inside-polygon
// fraction into the [0,12] range used for interior obstacles.
func polygonIntersectionCost(q geom.Quad, poly geom.Polygon) int {
	fraction := geom.PolygonIntersectionFraction(q, poly)

	return int(math.Round(fraction * 12))
}
