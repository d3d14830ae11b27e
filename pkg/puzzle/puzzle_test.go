package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabetGeneratesLetters(t *testing.T) {
	require := require.New(t)
	require.Equal([]string{"A", "B", "C"}, Alphabet(3))
	require.Equal([]string{"A"}, Alphabet(1))
}

func TestNewPuzzleHasNoRules(t *testing.T) {
	require := require.New(t)
	p := New(4)
	require.Equal(4, p.N)
	require.Equal([]string{"A", "B", "C", "D"}, p.Vars)
	require.Empty(p.Rules)
}

func TestAddRuleParsesAndAppends(t *testing.T) {
	require := require.New(t)
	p := New(3)
	require.NoError(p.AddRule("A+B=C"))
	require.Len(p.Rules, 1)
	require.Equal(1, p.Rules[0].VarCounts["A"])
}

func TestAddRuleRejectsMalformed(t *testing.T) {
	require := require.New(t)
	p := New(3)
	err := p.AddRule("A+B")
	require.Error(err)
	require.Empty(p.Rules)
}

func TestAddRulesStopsAtFirstError(t *testing.T) {
	require := require.New(t)
	p := New(3)
	err := p.AddRules([]string{"A+B=C", "not a rule", "A>B"})
	require.Error(err)
	require.Len(p.Rules, 1)
}

func TestCloneCopiesRuleSliceIndependently(t *testing.T) {
	require := require.New(t)
	p := New(3)
	require.NoError(p.AddRule("A+B=C"))

	clone := p.Clone()
	require.NoError(clone.AddRule("A>B"))

	require.Len(p.Rules, 1)
	require.Len(clone.Rules, 2)
}

func TestWithoutRuleRemovesByIndex(t *testing.T) {
	require := require.New(t)
	p := New(3)
	require.NoError(p.AddRule("A+B=C"))
	require.NoError(p.AddRule("A>B"))
	require.NoError(p.AddRule("B>C"))

	trimmed := p.WithoutRule(1)
	require.Len(trimmed.Rules, 2)
	require.Equal(p.Rules[0], trimmed.Rules[0])
	require.Equal(p.Rules[2], trimmed.Rules[1])
	require.Len(p.Rules, 3)
}
