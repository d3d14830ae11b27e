package solver

import (
	"testing"

	"github.com/latticepuzzle/numogrid/pkg/algebra"
	"github.com/latticepuzzle/numogrid/pkg/puzzle"
	"github.com/stretchr/testify/require"
)

func TestDeriveExpressionsForEachSingleOccurrenceVariable(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(3)
	require.NoError(p.AddRule("A+B=6"))
	s := New(p)

	s.deriveExpressions()
	require.Len(s.Expressions["A"], 1)
	require.Len(s.Expressions["B"], 1)
	require.Empty(s.Expressions["C"])
}

func TestDeriveExpressionsDeduplicatesByHash(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(3)
	require.NoError(p.AddRule("A+B=6"))
	s := New(p)

	s.deriveExpressions()
	s.deriveExpressions()
	require.Len(s.Expressions["A"], 1)
}

func TestApplyExpressionsSubstitutesIntoOtherRules(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(3)
	require.NoError(p.AddRule("A+B=6"))
	require.NoError(p.AddRule("A+C=5"))
	s := New(p)
	before := len(s.Rules)

	s.deriveExpressions()
	s.applyExpressions()

	require.Greater(len(s.Rules), before)

	found := false
	for _, r := range s.Rules {
		if r.Op() == algebra.OpEq && !r.Expr.HasVar("A") && r.Expr.HasVar("B") && r.Expr.HasVar("C") {
			found = true
		}
	}
	require.True(found, "expected a derived rule relating B and C with A eliminated")
}
