package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geolabel/pal/cost"
	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
)

func quadAt(cx, cy, half float64) geom.Quad {
	return geom.Quad{
		X: [4]float64{cx - half, cx + half, cx + half, cx - half},
		Y: [4]float64{cy - half, cy - half, cy + half, cy + half},
	}
}

func TestAddObstacleCostPenaltyPointInside(t *testing.T) {
	lp := &label.Candidate{Quad: quadAt(0, 0, 1)}
	feature := &label.Feature{Priority: 0.5, LabelDistance: 2}
	obstacle := &label.Obstacle{
		Kind:     label.Point,
		PointAt:  geom.Point{X: 0, Y: 0},
		Settings: label.ObstacleSettings{Factor: 1},
	}

	cost.AddObstacleCostPenalty(lp, feature, obstacle, cost.PlacementEngineVersion1)

	assert.Equal(t, 2.0, lp.Cost)
	assert.True(t, lp.ConflictsWithObstacle)
	assert.False(t, lp.HasHardObstacleConflict)
}

// Hard-obstacle-conflict check (v2 only): priority 0.9 -> p=0.2 < q=1.5,
// so whenever the obstacle contributes any penalty the flag is set under
// v2 and left false under v1, with an identical cost either way.
func TestAddObstacleCostPenaltyHardConflictV2(t *testing.T) {
	lp := &label.Candidate{Quad: quadAt(0, 0, 1)}
	feature := &label.Feature{Priority: 0.9, LabelDistance: 0}
	obstacle := &label.Obstacle{
		Kind:     label.Point,
		PointAt:  geom.Point{X: 0, Y: 0},
		Settings: label.ObstacleSettings{Factor: 1.5},
	}

	cost.AddObstacleCostPenalty(lp, feature, obstacle, cost.PlacementEngineVersion2)
	require.True(t, lp.ConflictsWithObstacle)
	assert.True(t, lp.HasHardObstacleConflict)

	lpV1 := &label.Candidate{Quad: quadAt(0, 0, 1)}
	cost.AddObstacleCostPenalty(lpV1, feature, obstacle, cost.PlacementEngineVersion1)
	assert.Equal(t, lp.Cost, lpV1.Cost)
	assert.False(t, lpV1.HasHardObstacleConflict)
}

func TestAddObstacleCostPenaltyLineCrossing(t *testing.T) {
	lp := &label.Candidate{Quad: quadAt(0, 0, 5)}
	feature := &label.Feature{Priority: 0.5}
	obstacle := &label.Obstacle{
		Kind: label.Line,
		Line: geom.Polyline{Points: []geom.Point{{X: -10, Y: 0}, {X: 10, Y: 0}}},
		Settings: label.ObstacleSettings{
			Factor: 1,
		},
	}

	cost.AddObstacleCostPenalty(lp, feature, obstacle, cost.PlacementEngineVersion2)
	assert.Equal(t, 1.0, lp.Cost)
	assert.True(t, lp.ConflictsWithObstacle)
}
