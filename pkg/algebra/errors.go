// Package algebra implements the arithmetic-logic expression trees that
// puzzle rules are built from: parsing, rendering, evaluation,
// canonicalisation and the symbolic rewrites (express/substitute) the
// logic solver relies on.
package algebra

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrParse is raised by Parse and NewRule when a rule string does not
// match the grammar, or parses to an expression that cannot stand as a
// rule (e.g. an arithmetic expression with no relational or logical
// root).
var ErrParse = errors.NewKind("parse error: %s")

// ErrIllFormedRule is raised by Canonical when algebraic expansion would
// introduce exponentiation, an irreducible division, or leaves no
// variable in the rule at all.
var ErrIllFormedRule = errors.NewKind("ill-formed rule: %s")

// unreachable marks an operator dispatch that should be impossible given
// the validation Parse and Canonical already perform; a panic is the
// idiomatic Go stand-in for an assertion that must never fire.
func unreachable(context string) {
	panic("algebra: unreachable: " + context)
}
