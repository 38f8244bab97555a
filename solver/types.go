package solver

import (
	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
	"github.com/geolabel/pal/rtree"
)

// unplaced marks a feature's activeLabel slot as currently unassigned.
const unplaced = -1

// RenderContext threads per-run tuning and cooperative cancellation
// into ChainSearch (and, via Problem's own fields, Reduce and the FALP
// initialiser). A nil Canceled is treated as "never cancel".
type RenderContext struct {
	// Canceled is polled between chain-search iterations. Reduce and
	// the FALP initialiser poll the function installed with
	// SetCancelFunc instead.
	Canceled func() bool

	// MaxChainDegree bounds how many moves a single ejection chain may
	// accumulate before the search gives up on that seed. Zero selects
	// a conservative built-in default.
	MaxChainDegree int
}

func (ctx RenderContext) canceled() bool {
	return ctx.Canceled != nil && ctx.Canceled()
}

func (ctx RenderContext) maxChainDegree() int {
	if ctx.MaxChainDegree <= 0 {
		return defaultMaxChainDegree
	}

	return ctx.MaxChainDegree
}

// defaultMaxChainDegree bounds ejection-chain length when the caller's
// RenderContext leaves MaxChainDegree unset.
const defaultMaxChainDegree = 10

// Problem is the global label-placement optimiser: a flat candidate
// arena plus the two spatial indices and bookkeeping vectors it needs.
// All candidate cross-references are by integer id into
// the arena; nothing holds a pointer into an index-owned structure.
type Problem struct {
	extent geom.Rect

	candidates []label.Candidate // arena; candidates[id].ID == id
	removed    []bool            // true once a candidate is logically gone (post-reduce)

	nbLp    []int // per-feature candidate count
	startId []int // per-feature starting candidate index, len F+1

	inactive []float64 // per-feature cost of leaving the feature unplaced

	features []*label.Feature // per-feature metadata (overlap handling, alwaysShow); may contain nils

	oracle label.ConflictOracle

	allIdx    *rtree.Index // every non-removed candidate
	activeIdx *rtree.Index // only the currently chosen candidates

	activeLabel []int // per feature: candidate id, or unplaced

	displayAll bool

	totalCandidates int // live candidate count, decremented by Reduce

	cancel func() bool // optional cooperative cancellation, polled at coarse boundaries
}

// SetCancelFunc installs a cooperative cancellation check polled
// between Reduce's outer passes, FALP's queue pops, and ChainSearch's
// seed iterations. A nil fn (the default) means never cancel.
func (p *Problem) SetCancelFunc(fn func() bool) { p.cancel = fn }

func (p *Problem) canceled() bool {
	return p.cancel != nil && p.cancel()
}

// NewProblem constructs a Problem from a flat, already id-assigned
// candidate arena. candidates[i].ID must equal i. nbLp, inactive and
// features must each have one entry per feature (a nil features entry
// is allowed and treated as "no overlap-if-required, no alwaysShow"),
// and sum(nbLp) == len(candidates).
func NewProblem(extent geom.Rect, candidates []label.Candidate, nbLp []int, inactive []float64, features []*label.Feature, displayAll bool, oracle label.ConflictOracle) (*Problem, error) {
	if len(nbLp) != len(inactive) || len(nbLp) != len(features) {
		return nil, ErrInvalidInput
	}

	startId := make([]int, len(nbLp)+1)
	for f, n := range nbLp {
		if n < 0 {
			return nil, ErrInvalidInput
		}
		startId[f+1] = startId[f] + n
	}
	if startId[len(nbLp)] != len(candidates) {
		return nil, ErrInvalidInput
	}

	for i := range candidates {
		if candidates[i].ID != i {
			return nil, ErrInvalidInput
		}
	}

	allIdx := rtree.New()
	for i := range candidates {
		if err := allIdx.Insert(candidates[i].ID, candidates[i].BoundingBox()); err != nil {
			return nil, err
		}
	}

	activeLabel := make([]int, len(nbLp))
	for f := range activeLabel {
		activeLabel[f] = unplaced
	}

	return &Problem{
		extent:          extent,
		candidates:      candidates,
		removed:         make([]bool, len(candidates)),
		nbLp:            nbLp,
		startId:         startId,
		inactive:        inactive,
		features:        features,
		oracle:          oracle,
		allIdx:          allIdx,
		activeIdx:       rtree.New(),
		activeLabel:     activeLabel,
		displayAll:      displayAll,
		totalCandidates: len(candidates),
	}, nil
}

// NumFeatures returns the feature count F.
func (p *Problem) NumFeatures() int { return len(p.nbLp) }

// candidatesOf returns the id range [start, end) for feature f.
func (p *Problem) candidatesOf(f int) (start, end int) {
	return p.startId[f], p.startId[f+1]
}

// featureOf returns the owning feature index of candidate id.
func (p *Problem) featureOf(id int) int {
	lo, hi := 0, len(p.nbLp)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if p.startId[mid] <= id {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}

// conflicts reports whether candidates a and b truly conflict,
// delegating to the host-supplied oracle.
func (p *Problem) conflicts(a, b int) bool {
	return p.oracle.Conflicts(&p.candidates[a], &p.candidates[b])
}
