package palcfg

import "github.com/geolabel/pal/cost"

// Options collects every solver-tuning knob a host may want to set
// without reaching into package internals.
type Options struct {
	EngineVersion           cost.EngineVersion
	MaxChainDegree          int
	DisplayAll              bool
	DiscriminantLoopEnabled bool
}

// Option configures an Options value.
type Option func(*Options)

// WithEngineVersion selects the placement-engine cost rules.
func WithEngineVersion(v cost.EngineVersion) Option {
	return func(o *Options) { o.EngineVersion = v }
}

// WithMaxChainDegree bounds ejection-chain length.
func WithMaxChainDegree(degree int) Option {
	return func(o *Options) { o.MaxChainDegree = degree }
}

// WithDisplayAll toggles the FALP display-all fallback.
func WithDisplayAll(enabled bool) Option {
	return func(o *Options) { o.DisplayAll = enabled }
}

// WithDiscriminantLoopEnabled toggles the candidate cost finalisation
// discriminant-prune step.
func WithDiscriminantLoopEnabled(enabled bool) Option {
	return func(o *Options) { o.DiscriminantLoopEnabled = enabled }
}

// DefaultOptions returns the upstream-compatible defaults: engine v2,
// a conservative chain degree, displayAll off, discriminant loop on.
func DefaultOptions() Options {
	return Options{
		EngineVersion:           cost.PlacementEngineVersion2,
		MaxChainDegree:          10,
		DisplayAll:              false,
		DiscriminantLoopEnabled: true,
	}
}

// New builds an Options value from DefaultOptions with opts applied
// left-to-right.
func New(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ToCostOptions adapts Options into the cost.Options a FinalizeCandidateCosts
// call needs, preserving the built-in size penalty.
func (o Options) ToCostOptions() cost.Options {
	c := cost.DefaultOptions()
	c.EngineVersion = o.EngineVersion
	c.DiscriminantLoopEnabled = o.DiscriminantLoopEnabled

	return c
}
