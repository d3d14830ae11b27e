package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assignments exercised against both the original and the rewritten
// rule; Express must preserve truth value across all of them.
var rewriteAssignments = []map[string]int{
	{"A": 1, "B": 2, "C": 3},
	{"A": 4, "B": 2, "C": 6},
	{"A": 0, "B": 0, "C": 0},
	{"A": 5, "B": 5, "C": 1},
}

func TestExpressPreservesSemantics(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B=C")
	require.NoError(err)

	expressed, err := Express(rule, "A")
	require.NoError(err)
	require.True(expressed.IsVariableExpression)
	require.Equal(LeafVar, expressed.Expr.LHS.Kind)
	require.Equal("A", expressed.Expr.LHS.Var)

	for _, values := range rewriteAssignments {
		require.Equal(Eval(rule, values), Eval(expressed, values), "assignment %v", values)
	}
}

func TestExpressRequiresSingleOccurrence(t *testing.T) {
	require := require.New(t)
	// A appears both alone and inside the A*B monomial, so it survives
	// canonicalisation as two distinct occurrences.
	rule, err := NewRule("A+AB=C")
	require.NoError(err)
	require.Equal(2, rule.VarCounts["A"])
	_, err = Express(rule, "A")
	require.Error(err)
	require.True(ErrIllFormedRule.Is(err))
}

func TestExpressRequiresEquality(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B>C")
	require.NoError(err)
	_, err = Express(rule, "A")
	require.Error(err)
}

func TestExpressSubtraction(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A-B=C")
	require.NoError(err)
	expressed, err := Express(rule, "B")
	require.NoError(err)
	for _, values := range rewriteAssignments {
		require.Equal(Eval(rule, values), Eval(expressed, values), "assignment %v", values)
	}
}

func TestSubstituteReplacesVariable(t *testing.T) {
	require := require.New(t)
	rule, err := NewRule("A+B=C")
	require.NoError(err)
	expressed, err := Express(rule, "A")
	require.NoError(err)

	other, err := NewRule("A+D=10")
	require.NoError(err)

	substituted, err := Substitute(other, "A", expressed.Expr.RHS)
	require.NoError(err)
	require.False(substituted.Expr.HasVar("A"))

	// Substitution is only sound where the expressed equality (A=C-B,
	// i.e. the original A+B=C) actually holds — these three do.
	consistent := []map[string]int{
		{"A": 1, "B": 2, "C": 3},
		{"A": 4, "B": 2, "C": 6},
		{"A": 0, "B": 0, "C": 0},
	}
	for _, values := range consistent {
		values = withValue(values, "D", 10-values["A"])
		require.Equal(Eval(other, values), Eval(substituted, values), "assignment %v", values)
	}
}

func withValue(base map[string]int, k string, v int) map[string]int {
	out := make(map[string]int, len(base)+1)
	for bk, bv := range base {
		out[bk] = bv
	}
	out[k] = v
	return out
}
