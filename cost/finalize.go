package cost

import (
	"math"
	"sort"

	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
)

// epsilon guards every range-based normalisation below against
// division by (near) zero.
const epsilon = 1e-9

// FinalizeCandidateCosts sorts, prunes and refines the candidates of a
// single feature in place: sort, discriminant prune, truncate, polygon
// refinement, size penalty, and a final stable re-sort by the updated
// costs. extent is the map's bounding rectangle, used as an additional
// ring for the polygon ring-distance cost.
func FinalizeCandidateCosts(feat *label.FeatsBundle, extent geom.Rect, opts Options) {
	cands := feat.Candidates
	if len(cands) == 0 {
		return
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Cost < cands[j].Cost })

	stop := len(cands)
	if opts.DiscriminantLoopEnabled {
		stop = pruneByDiscriminant(cands)
	}
	if stop < len(cands) {
		cands = cands[:stop]
	}
	feat.Candidates = cands

	if feat.Feature.Kind == label.Polygon {
		arr := feat.Feature.Arrangement
		if arr == label.Free || arr == label.Horizontal {
			applyRingDistanceCost(feat.Feature, cands, extent)
			applyCentroidDistanceCost(feat.Feature, cands)
		}
	}

	if opts.SizePenalty != nil {
		opts.SizePenalty(feat.Feature, cands)
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Cost < cands[j].Cost })
}

// pruneByDiscriminant grows a threshold discrim until at least one
// leading candidate falls under it, then (a preserved upstream quirk)
// clamps every surviving candidate's cost to 0.0021 whenever that
// threshold exceeded 1.5. Returns the prefix length to keep.
func pruneByDiscriminant(cands []label.Candidate) int {
	maxCost := cands[len(cands)-1].Cost

	discrim := 0.0
	stop := 0
	for {
		discrim++
		stop = 0
		for stop < len(cands) && cands[stop].Cost < discrim {
			stop++
		}
		if stop != 0 || discrim >= maxCost+2.0 {
			break
		}
	}

	if discrim > 1.5 {
		for k := 0; k < stop; k++ {
			cands[k].Cost = 0.0021
		}
	}

	return stop
}

// applyRingDistanceCost, for each candidate, takes the minimum distance
// to the polygon's outer ring, the map
// extent, and every interior hole, then rescales that distance across
// the candidate set so the candidate closest to a ring costs 0.002 and
// the one farthest costs 0.
//
// This preserves the upstream quirk verbatim: a candidate centre lying
// outside the polygon is NOT penalised relative to one lying inside,
// because the minimum distance is taken over all rings without regard
// to which side of the outer ring the centre falls on.
func applyRingDistanceCost(f *label.Feature, cands []label.Candidate, extent geom.Rect) {
	if f.PolygonGeom == nil {
		return
	}

	extentRing := geom.RectAsRing(extent)

	dists := make([]float64, len(cands))
	minDist, maxDist := math.MaxFloat64, -math.MaxFloat64
	for i := range cands {
		c := cands[i].Quad.Center()
		d := geom.MinDistanceToRing(c, f.PolygonGeom.Outer)
		if dExtent := geom.MinDistanceToRing(c, extentRing); dExtent < d {
			d = dExtent
		}
		for _, hole := range f.SelfObstacle {
			if dHole := geom.MinDistanceToRing(c, hole); dHole < d {
				d = dHole
			}
		}

		dists[i] = d
		minDist = math.Min(minDist, d)
		maxDist = math.Max(maxDist, d)
	}

	costRange := maxDist - minDist
	if costRange <= epsilon {
		return
	}

	normalizer := 0.0020 / costRange
	for i := range cands {
		cands[i].Cost += 0.002 - (dists[i]-minDist)*normalizer
	}
}

// applyCentroidDistanceCost adds a cost where candidates nearer
// the polygon's centroid cost 0, and the farthest costs 0.001.
func applyCentroidDistanceCost(f *label.Feature, cands []label.Candidate) {
	if f.PolygonGeom == nil {
		return
	}

	centroid := geom.Centroid(*f.PolygonGeom)

	dists := make([]float64, len(cands))
	minDist, maxDist := math.MaxFloat64, -math.MaxFloat64
	for i := range cands {
		c := cands[i].Quad.Center()
		dx, dy := centroid.X-c.X, centroid.Y-c.Y
		d := math.Sqrt(dx*dx + dy*dy)

		dists[i] = d
		minDist = math.Min(minDist, d)
		maxDist = math.Max(maxDist, d)
	}

	costRange := maxDist - minDist
	if costRange <= epsilon {
		return
	}

	normalizer := 0.001 / costRange
	for i := range cands {
		cands[i].Cost += (dists[i] - minDist) * normalizer
	}
}
