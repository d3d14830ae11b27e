package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalArithmetic(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B=C")
	require.NoError(err)
	require.True(Eval(rule, map[string]int{"A": 2, "B": 3, "C": 5}))
	require.False(Eval(rule, map[string]int{"A": 2, "B": 3, "C": 6}))
}

func TestEvalUndefinedVariableIsFalse(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B=C")
	require.NoError(err)
	require.False(Eval(rule, map[string]int{"A": 2, "B": 3}))
}

func TestEvalDivisionRequiresPositiveExactQuotient(t *testing.T) {
	require := require.New(t)
	// NewRule would reject A/B as an irreducible division, so the rule is
	// built straight from the parsed tree to reach evalArith's division case.
	expr, err := ParseExpr("A/B=C")
	require.NoError(err)
	rule := &Rule{Expr: expr}

	require.True(Eval(rule, map[string]int{"A": 6, "B": 2, "C": 3}))
	// negative dividend: undefined, relation is false regardless of C.
	require.False(Eval(rule, map[string]int{"A": -6, "B": 2, "C": -3}))
	// inexact quotient: undefined.
	require.False(Eval(rule, map[string]int{"A": 7, "B": 2, "C": 3}))
}

func TestEvalInequalities(t *testing.T) {
	require := require.New(t)

	gt, err := NewRule("A>B")
	require.NoError(err)
	require.True(Eval(gt, map[string]int{"A": 3, "B": 2}))
	require.False(Eval(gt, map[string]int{"A": 2, "B": 2}))

	geq, err := NewRule("A>=B")
	require.NoError(err)
	require.True(Eval(geq, map[string]int{"A": 2, "B": 2}))

	lt, err := NewRule("A<B")
	require.NoError(err)
	require.True(Eval(lt, map[string]int{"A": 1, "B": 2}))
	require.False(Eval(lt, map[string]int{"A": 2, "B": 1}))
}

func TestEvalLogicalOperators(t *testing.T) {
	require := require.New(t)

	impl, err := NewRule("A=1=>B=2")
	require.NoError(err)
	require.True(Eval(impl, map[string]int{"A": 1, "B": 2}))
	require.False(Eval(impl, map[string]int{"A": 1, "B": 3}))
	require.True(Eval(impl, map[string]int{"A": 5, "B": 3}))

	iff, err := NewRule("A=1<=>B=2")
	require.NoError(err)
	require.True(Eval(iff, map[string]int{"A": 1, "B": 2}))
	require.True(Eval(iff, map[string]int{"A": 5, "B": 3}))
	require.False(Eval(iff, map[string]int{"A": 1, "B": 3}))
}
