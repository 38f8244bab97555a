package solver

// computeInitialOverlaps populates NumOverlaps for every non-removed
// candidate by counting, per candidate, the currently-indexed
// candidates of *other* features whose bounding box intersects it and
// that the conflict oracle confirms as a true conflict.
func (p *Problem) computeInitialOverlaps() {
	for i := range p.candidates {
		if p.removed[i] {
			continue
		}

		count := 0
		box := p.candidates[i].BoundingBox()
		myFeature := p.featureOf(i)
		p.allIdx.Intersects(box, func(otherID int) bool {
			if otherID == i || p.removed[otherID] {
				return true
			}
			if p.featureOf(otherID) == myFeature {
				return true
			}
			if p.conflicts(i, otherID) {
				count++
			}

			return true
		})
		p.candidates[i].NumOverlaps = count
	}
}

// Reduce collapses dominated candidates: for each feature, it scans
// candidates low-to-high by cost for the first one with zero
// conflicts and locks it in; every *worse-cost* sibling past that
// point is then discarded from the arena's live spatial index, while
// lower-cost (and still-conflicting) siblings before it are kept as
// alternatives for FALP/chain search. Discarding a sibling decrements
// the overlap counts of whatever it used to conflict with, which may
// unlock further features on a later pass, so Reduce repeats full
// passes until one makes no change.
func (p *Problem) Reduce() {
	p.computeInitialOverlaps()

	for {
		changed := false
		for f := 0; f < p.NumFeatures(); f++ {
			if p.canceled() {
				return
			}

			start, end := p.candidatesOf(f)
			lock := -1
			for i := start; i < end; i++ {
				if p.removed[i] {
					continue
				}
				if p.candidates[i].NumOverlaps == 0 {
					lock = i

					break
				}
			}
			if lock == -1 {
				continue
			}

			for i := lock + 1; i < end; i++ {
				if p.removed[i] {
					continue
				}
				p.discardCandidate(i)
				changed = true
			}
		}

		if !changed {
			return
		}
	}
}

// discardCandidate removes candidate id from the live arena and
// allIdx, and decrements NumOverlaps on every other-feature candidate
// it used to conflict with.
func (p *Problem) discardCandidate(id int) {
	box := p.candidates[id].BoundingBox()
	myFeature := p.featureOf(id)
	p.allIdx.Intersects(box, func(otherID int) bool {
		if otherID == id || p.removed[otherID] {
			return true
		}
		if p.featureOf(otherID) == myFeature {
			return true
		}
		if p.conflicts(id, otherID) {
			p.candidates[otherID].NumOverlaps--
		}

		return true
	})

	_ = p.allIdx.Remove(id)
	p.removed[id] = true
	p.totalCandidates--
}
