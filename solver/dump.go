package solver

import (
	"github.com/davecgh/go-spew/spew"
)

// DumpState pretty-prints the arena and current solution vector for
// troubleshooting, mirroring the verbose tracing the original solver
// produced at every step. Cheap to call but never called implicitly;
// cmd/palsolve gates it behind its -debug flag.
func (p *Problem) DumpState() string {
	state := struct {
		Candidates      []string
		NbLp            []int
		StartId         []int
		Inactive        []float64
		ActiveLabel     []int
		TotalCandidates int
		DisplayAll      bool
	}{
		NbLp:            p.nbLp,
		StartId:         p.startId,
		Inactive:        p.inactive,
		ActiveLabel:     p.activeLabel,
		TotalCandidates: p.totalCandidates,
		DisplayAll:      p.displayAll,
	}

	for i := range p.candidates {
		if p.removed[i] {
			continue
		}
		state.Candidates = append(state.Candidates, spew.Sprintf("%+v", p.candidates[i]))
	}

	return spew.Sdump(state)
}
