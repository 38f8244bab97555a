package solver

import "github.com/geolabel/pal/label"

// noCandidatePlacement is the placeholder Candidate appended to
// unlabeled for a feature whose candidate generator produced zero
// candidates at all (nbLp[f] == 0). It carries no usable geometry or
// cost; ID is -1 so callers can distinguish it from a real arena
// candidate, mirroring mPositionsWithNoCandidates in the reference
// solver, which tracks such features separately from every feature
// that did get candidates but lost them all to Reduce or conflicts.
func noCandidatePlacement(f int) label.Candidate {
	return label.Candidate{ID: unplaced, FeatureIndex: f}
}

// GetSolution extracts the final placement per feature.
//
// For each feature: its active candidate is emitted as placed if one
// was assigned. Otherwise, when returnInactive is set, or the
// feature's overlap handling allows falling back, or the feature is
// marked AlwaysShow, its first candidate is emitted as an overlapping
// placement instead. Features left with neither are reported via the
// unlabeled slice, provided they had at least one candidate of their
// own to report. Finally, every feature whose candidate generator
// produced zero candidates in the first place is also appended to
// unlabeled, as a placeholder carrying just its feature index.
func (p *Problem) GetSolution(returnInactive bool) (placed, unlabeled []label.Candidate) {
	for f := 0; f < p.NumFeatures(); f++ {
		labelID := p.activeLabel[f]
		if labelID != unplaced {
			placed = append(placed, p.candidates[labelID])

			continue
		}

		start, end := p.candidatesOf(f)
		if start == end {
			continue
		}

		hasCandidates := !p.allRemoved(start, end)

		if hasCandidates && (returnInactive || p.allowsOverlapFallback(f) || p.alwaysShow(f)) {
			placed = append(placed, p.candidates[start])

			continue
		}

		if hasCandidates {
			unlabeled = append(unlabeled, p.candidates[start])
		}
	}

	for f := 0; f < p.NumFeatures(); f++ {
		start, end := p.candidatesOf(f)
		if start == end {
			unlabeled = append(unlabeled, noCandidatePlacement(f))
		}
	}

	return placed, unlabeled
}

func (p *Problem) allRemoved(start, end int) bool {
	for i := start; i < end; i++ {
		if !p.removed[i] {
			return false
		}
	}

	return true
}

func (p *Problem) allowsOverlapFallback(f int) bool {
	ft := p.features[f]

	return ft != nil && ft.OverlapHandling == label.AllowOverlapIfRequired
}

func (p *Problem) alwaysShow(f int) bool {
	ft := p.features[f]

	return ft != nil && ft.AlwaysShow
}
