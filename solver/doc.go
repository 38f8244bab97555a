// Package solver implements the combinatorial label-placement
// optimiser: a candidate arena, a dominance-based reduce pass, a
// greedy FALP initial solution, and an ejection-chain local search
// that together select at most one candidate per feature while
// minimising total placement cost under pairwise conflict
// constraints.
package solver
