// Package solver implements a fixpoint constraint-propagation logic
// solver: reduction to fixpoint over per-variable candidate sets via
// three strategies (per-rule viability, naked subsets, hidden subsets),
// interleaved with algebraic derivation of new "var = expression" rules.
package solver

import errors "gopkg.in/src-d/go-errors.v1"

// ErrUnsatisfiable is returned by Solve when reduction empties some
// variable's candidate set — a hard logical failure, reported rather
// than retried.
var ErrUnsatisfiable = errors.NewKind("puzzle is unsatisfiable")
