// Package cost computes and finalises candidate placement costs: the
// per-obstacle penalty applied as candidates are generated, and the
// per-feature sort/prune/refine pass that turns a raw candidate list
// into the ordered, pruned list the solver consumes.
package cost
