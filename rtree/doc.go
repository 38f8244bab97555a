// Package rtree implements a minimal bounding-box R-tree used as the
// solver's spatial index. Two independent trees are kept by the solver
// (one over every candidate, one over the currently active solution);
// this package only knows about integer ids and rectangles, never about
// candidates or features.
//
// Entries are leaves; internal nodes hold the union rectangle of their
// children. Insert uses a least-enlargement choose-subtree heuristic and
// a Guttman-style split on overflow (quadratic seed pick, then
// least-enlargement assignment). Remove deletes the
// leaf entry and re-inserts any orphaned siblings left by node
// underflow, which keeps the tree balanced without a dedicated merge
// step.
//
// Range queries are visitor-style: Intersects invokes a callback for
// every hit and stops early only if the callback returns false, so a
// caller can halt a scan as soon as it finds what it needs.
package rtree
