package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
)

func internalBboxOracle() label.ConflictOracle {
	return label.ConflictOracleFunc(func(a, b *label.Candidate) bool {
		if a.FeatureIndex == b.FeatureIndex {
			return false
		}

		return a.BoundingBox().Intersects(b.BoundingBox())
	})
}

func internalQuadAt(cx, cy, half float64) geom.Quad {
	return geom.Quad{
		X: [4]float64{cx - half, cx + half, cx + half, cx - half},
		Y: [4]float64{cy - half, cy - half, cy + half, cy + half},
	}
}

// Reduce must only discard siblings worse-cost (higher index) than the
// locked zero-overlap candidate, not every sibling: a lower-cost
// candidate that still conflicts with another feature is a legitimate
// alternative for FALP/chain search and must survive. This is a
// white-box test over p.removed since the public API has no other way
// to observe which arena entries Reduce discarded.
func TestReduceKeepsLowerCostConflictingSibling(t *testing.T) {
	cands := []label.Candidate{
		{ID: 0, FeatureIndex: 0, Quad: internalQuadAt(0, 0, 5), Cost: 1.0},   // A0: conflicts with B0
		{ID: 1, FeatureIndex: 0, Quad: internalQuadAt(500, 0, 5), Cost: 2.0}, // A1: zero overlap
		{ID: 2, FeatureIndex: 1, Quad: internalQuadAt(0, 0, 5), Cost: 0.5},   // B0: conflicts with A0
	}
	features := []*label.Feature{
		{Index: 0, Kind: label.Point},
		{Index: 1, Kind: label.Point},
	}

	p, err := NewProblem(geom.Rect{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}, cands, []int{2, 1}, []float64{5.0, 5.0}, features, false, internalBboxOracle())
	require.NoError(t, err)

	p.Reduce()

	assert.False(t, p.removed[0], "A0 (lower-cost, still conflicting) must survive Reduce as an alternative")
	assert.False(t, p.removed[1], "A1 (the locked zero-overlap candidate) must survive Reduce")
	assert.False(t, p.removed[2], "B0 must survive since its only candidate never reached zero overlap")
}

// A feature with three candidates where the zero-overlap candidate is
// in the middle exercises the "discard only i > lock" boundary on both
// sides at once.
func TestReduceDiscardsOnlyWorseCostSiblings(t *testing.T) {
	cands := []label.Candidate{
		{ID: 0, FeatureIndex: 0, Quad: internalQuadAt(0, 0, 5), Cost: 1.0},    // conflicts with B0, kept
		{ID: 1, FeatureIndex: 0, Quad: internalQuadAt(500, 0, 5), Cost: 2.0},  // zero overlap, locked
		{ID: 2, FeatureIndex: 0, Quad: internalQuadAt(1000, 0, 5), Cost: 3.0}, // zero overlap, worse cost, discarded
		{ID: 3, FeatureIndex: 1, Quad: internalQuadAt(0, 0, 5), Cost: 0.5},    // B0: conflicts with A0
	}
	features := []*label.Feature{
		{Index: 0, Kind: label.Point},
		{Index: 1, Kind: label.Point},
	}

	p, err := NewProblem(geom.Rect{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}, cands, []int{3, 1}, []float64{5.0, 5.0}, features, false, internalBboxOracle())
	require.NoError(t, err)

	p.Reduce()

	assert.False(t, p.removed[0], "lower-cost conflicting sibling before the lock must survive")
	assert.False(t, p.removed[1], "the locked zero-overlap candidate must survive")
	assert.True(t, p.removed[2], "higher-cost sibling after the lock must be discarded")
	assert.False(t, p.removed[3])
}
