package solver

import "math"

// chainEps is the acceptance tolerance for an ejection chain's delta:
// a chain is only applied when it improves cost by more than this.
const chainEps = 1e-9

// move is one step recorded while building a chain attempt: feature
// seed, the active label it held at the time, and the new label being
// tried in its place.
type move struct {
	feat     int
	oldLabel int
	newLabel int
}

// ChainMove is one committed step of a Chain: feature feat receives
// NewLabel (unplaced meaning "hide this feature").
type ChainMove struct {
	Feature  int
	NewLabel int
}

// Chain is a candidate sequence of moves together with its net cost
// delta (negative means improvement).
type Chain struct {
	Moves []ChainMove
	Delta float64
}

// buildChain copies currentChain's moves into a Chain, appending
// (seed, lid).
func buildChain(currentChain []move, seed, lid int, delta float64) *Chain {
	moves := make([]ChainMove, 0, len(currentChain)+1)
	for _, m := range currentChain {
		moves = append(moves, ChainMove{Feature: m.feat, NewLabel: m.newLabel})
	}
	moves = append(moves, ChainMove{Feature: seed, NewLabel: lid})

	return &Chain{Moves: moves, Delta: delta}
}

// chain attempts an ejection chain starting from seed: a bounded
// sequence of swaps, each ejecting whichever feature conflicts with
// the newly tried candidate, that together may reduce total cost. It
// returns the lowest-delta chain found, whether or not that delta is
// an improvement, or nil if no alternative was evaluated. The
// activeIdx is mutated to reflect whichever tentative state is current
// mid-search, then fully unwound before returning — callers apply the
// returned chain (if any) themselves via ChainSearch.
func (p *Problem) chain(seed int, maxDegree int) *Chain {
	tmpsol := append([]int(nil), p.activeLabel...)

	var currentChain []move
	var retainedChain *Chain
	deltaBest := math.Inf(1)
	delta := 0.0

	inChain := func(feat int) bool {
		for _, m := range currentChain {
			if m.feat == feat {
				return true
			}
		}

		return false
	}

	for seed != unplaced {
		seedNbLp := p.nbLp[seed]
		deltaMin := math.Inf(1)
		nextSeed := unplaced
		retainedLabel := -2

		if tmpsol[seed] == unplaced {
			delta -= p.inactive[seed]
		} else {
			delta -= p.candidates[tmpsol[seed]].Cost
		}

		for i := -1; i < seedNbLp; i++ {
			if tmpsol[seed] == unplaced && i == -1 {
				continue // "already unplaced and i=-1" is not a real alternative
			}
			if i != -1 && p.startId[seed]+i == tmpsol[seed] {
				continue // skip the candidate already active
			}

			if i == -1 {
				candidateDelta := delta + p.inactive[seed]
				if candidateDelta < deltaBest {
					deltaBest = candidateDelta
					retainedChain = buildChain(currentChain, seed, unplaced, candidateDelta)
				}

				continue
			}

			lid := p.startId[seed] + i
			deltaTmp := delta
			var conflictFeats []int
			cycle := false

			box := p.candidates[lid].BoundingBox()
			p.activeIdx.Intersects(box, func(otherID int) bool {
				if !p.conflicts(lid, otherID) {
					return true
				}

				feat := p.featureOf(otherID)
				if inChain(feat) {
					cycle = true

					return false
				}
				if !containsInt(conflictFeats, feat) {
					conflictFeats = append(conflictFeats, feat)
					deltaTmp += p.candidates[otherID].Cost + p.inactive[feat]
				}

				return true
			})

			if cycle {
				continue // abandon this alternative entirely
			}

			switch len(conflictFeats) {
			case 0:
				candidateDelta := delta + p.candidates[lid].Cost
				if candidateDelta < deltaBest {
					deltaBest = candidateDelta
					retainedChain = buildChain(currentChain, seed, lid, candidateDelta)
				}

			case 1:
				if deltaTmp < deltaMin {
					deltaMin = deltaTmp
					retainedLabel = lid
					nextSeed = conflictFeats[0]
				}

			default:
				chainDelta := delta + p.candidates[lid].Cost
				moves := make([]ChainMove, 0, len(currentChain)+1+len(conflictFeats))
				for _, m := range currentChain {
					moves = append(moves, ChainMove{Feature: m.feat, NewLabel: m.newLabel})
				}
				moves = append(moves, ChainMove{Feature: seed, NewLabel: lid})
				for _, feat := range conflictFeats {
					chainDelta += p.inactive[feat]
					moves = append(moves, ChainMove{Feature: feat, NewLabel: unplaced})
				}

				if chainDelta < deltaBest {
					deltaBest = chainDelta
					retainedChain = &Chain{Moves: moves, Delta: chainDelta}
				}
			}
		}

		if nextSeed == unplaced || len(currentChain) > maxDegree {
			seed = unplaced

			continue
		}

		currentChain = append(currentChain, move{feat: seed, oldLabel: tmpsol[seed], newLabel: retainedLabel})
		if tmpsol[seed] != unplaced {
			_ = p.activeIdx.Remove(tmpsol[seed])
		}
		if retainedLabel != unplaced {
			_ = p.activeIdx.Insert(retainedLabel, p.candidates[retainedLabel].BoundingBox())
		}
		tmpsol[seed] = retainedLabel
		delta += p.candidates[retainedLabel].Cost
		seed = nextSeed
	}

	for _, m := range currentChain {
		if m.newLabel != unplaced {
			_ = p.activeIdx.Remove(m.newLabel)
		}
		if m.oldLabel != unplaced {
			_ = p.activeIdx.Insert(m.oldLabel, p.candidates[m.oldLabel].BoundingBox())
		}
	}

	return retainedChain
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// ChainSearch runs the ejection-chain local search driver to
// convergence: it cycles through features whose neighbourhood hasn't
// been re-verified since their last change (the ok[] bookkeeping),
// attempting a chain at each and applying it if it strictly improves
// total cost. It first seeds the solution via InitSolutionFALP.
func (p *Problem) ChainSearch(ctx RenderContext) error {
	if p.NumFeatures() == 0 {
		return nil
	}

	if err := p.InitSolutionFALP(); err != nil {
		return err
	}

	maxDegree := ctx.maxChainDegree()
	ok := make([]bool, p.NumFeatures())
	iter := 0

	for {
		if p.canceled() || ctx.canceled() {
			return nil
		}

		seed := (iter + 1) % p.NumFeatures()
		for ok[seed] && seed != iter {
			seed = (seed + 1) % p.NumFeatures()
		}
		if seed == iter {
			return nil
		}

		iter = (iter + 1) % p.NumFeatures()

		retained := p.chain(seed, maxDegree)
		if retained != nil && retained.Delta < -chainEps {
			p.applyChain(retained, ok)
		} else {
			ok[seed] = true
		}
	}
}

// applyChain commits a chain's moves to the live solution, clearing
// ok[] for every feature whose candidates conflict with whatever
// placement was just displaced.
func (p *Problem) applyChain(c *Chain, ok []bool) {
	for _, m := range c.Moves {
		fid, lid := m.Feature, m.NewLabel

		if p.activeLabel[fid] != unplaced {
			old := p.activeLabel[fid]
			_ = p.activeIdx.Remove(old)

			box := p.candidates[old].BoundingBox()
			p.allIdx.Intersects(box, func(otherID int) bool {
				if otherID != old && p.conflicts(old, otherID) {
					ok[p.featureOf(otherID)] = false
				}

				return true
			})
		}

		p.activeLabel[fid] = lid
		if lid != unplaced {
			_ = p.activeIdx.Insert(lid, p.candidates[lid].BoundingBox())
		}

		ok[fid] = false
	}
}
