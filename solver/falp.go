package solver

import (
	"github.com/geolabel/pal/pq"
	"github.com/geolabel/pal/rtree"
)

// InitSolutionFALP builds a greedy initial assignment (Yamamoto,
// Câmara & Lorena's FALP): repeatedly take the live candidate with the
// fewest remaining conflicts, commit it, and eliminate every candidate
// it rules out. Honors cooperative cancellation between pops.
func (p *Problem) InitSolutionFALP() error {
	for f := range p.activeLabel {
		p.activeLabel[f] = unplaced
	}

	p.computeInitialOverlaps()
	p.activeIdx = rtree.New()

	queue := pq.New(p.totalCandidates)
	for i := range p.candidates {
		if p.removed[i] {
			continue
		}
		// totalCandidates already sizes the queue to fit every live
		// candidate, so Insert cannot legitimately report ErrFull here.
		if err := queue.Insert(i, p.candidates[i].NumOverlaps); err != nil {
			return err
		}
	}

	for queue.Size() > 0 {
		if p.canceled() {
			break
		}

		id, err := queue.GetBest()
		if err != nil {
			break
		}

		f := p.featureOf(id)
		p.activeLabel[f] = id

		start, end := p.candidatesOf(f)
		for sib := start; sib < end; sib++ {
			if sib == id {
				continue
			}
			p.ignore(sib, queue)
		}

		box := p.candidates[id].BoundingBox()
		var conflictors []int
		p.allIdx.Intersects(box, func(otherID int) bool {
			if otherID != id && p.conflicts(id, otherID) {
				conflictors = append(conflictors, otherID)
			}

			return true
		})
		for _, c := range conflictors {
			p.ignore(c, queue)
		}

		_ = p.activeIdx.Insert(id, box)
	}

	if p.displayAll {
		p.falpDisplayAllFallback()
	}

	return nil
}

// ignore removes c from the queue (if present) and, for every
// still-queued candidate that truly conflicts with c, decreases that
// candidate's pending-conflict key by one.
func (p *Problem) ignore(c int, queue *pq.PriorityQueue) {
	if queue.IsIn(c) {
		_ = queue.Remove(c)
	}

	box := p.candidates[c].BoundingBox()
	p.allIdx.Intersects(box, func(otherID int) bool {
		if otherID == c || !queue.IsIn(otherID) {
			return true
		}
		if p.conflicts(c, otherID) {
			_ = queue.DecreaseKey(otherID)
		}

		return true
	})
}

// falpDisplayAllFallback handles the displayAll case: every feature
// left unplaced after the greedy pass is forced onto its
// least-overlapping candidate against the current active solution.
func (p *Problem) falpDisplayAllFallback() {
	for f := 0; f < p.NumFeatures(); f++ {
		if p.activeLabel[f] != unplaced {
			continue
		}

		start, end := p.candidatesOf(f)
		best, bestOverlaps := -1, -1
		for i := start; i < end; i++ {
			if p.removed[i] {
				continue
			}
			overlaps := p.countActiveOverlaps(i)
			if best == -1 || overlaps < bestOverlaps {
				best, bestOverlaps = i, overlaps
			}
		}
		if best == -1 {
			continue
		}

		p.activeLabel[f] = best
		_ = p.activeIdx.Insert(best, p.candidates[best].BoundingBox())
	}
}

// countActiveOverlaps counts how many currently-active candidates
// (from other features) truly conflict with candidate id.
func (p *Problem) countActiveOverlaps(id int) int {
	count := 0
	box := p.candidates[id].BoundingBox()
	p.activeIdx.Intersects(box, func(otherID int) bool {
		if otherID != id && p.conflicts(id, otherID) {
			count++
		}

		return true
	})

	return count
}
