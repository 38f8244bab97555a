package cost

import "github.com/geolabel/pal/label"

// EngineVersion selects which placement-engine cost rules apply.
// PlacementEngineVersion2 adds the hard-obstacle-conflict check that
// version 1 never performs.
type EngineVersion int

const (
	// PlacementEngineVersion1 skips the hard-obstacle-conflict check.
	PlacementEngineVersion1 EngineVersion = iota
	// PlacementEngineVersion2 additionally marks HasHardObstacleConflict
	// when a candidate's feature priority cannot outrank the obstacle.
	PlacementEngineVersion2
)

// Options tunes candidate cost finalisation.
type Options struct {
	// EngineVersion selects the obstacle-penalty rules applied in
	// AddObstacleCostPenalty.
	EngineVersion EngineVersion

	// DiscriminantLoopEnabled toggles the prune-by-discriminant step
	// (step 2) of FinalizeCandidateCosts. Disabling it keeps every
	// candidate sorted but unpruned; see DESIGN.md for why upstream's
	// quirky default is nonetheless preserved as the Go default.
	DiscriminantLoopEnabled bool

	// SizePenalty is invoked at the end of finalisation to apply the
	// feature-geometry-size based additive penalty. Nil disables it.
	SizePenalty label.SizePenaltyFunc
}

// DefaultOptions returns the upstream-compatible defaults: engine v2,
// the discriminant loop enabled, and the built-in size penalty.
func DefaultOptions() Options {
	return Options{
		EngineVersion:           PlacementEngineVersion2,
		DiscriminantLoopEnabled: true,
		SizePenalty:             label.DefaultSizePenalty,
	}
}
