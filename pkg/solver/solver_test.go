package solver

import (
	"testing"

	"github.com/latticepuzzle/numogrid/pkg/puzzle"
	"github.com/stretchr/testify/require"
)

func TestSolveResolvesInequalityByPropagationAlone(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(2)
	require.NoError(p.AddRule("A>B"))

	s := New(p)
	solved, candidates, err := s.Solve(10)
	require.NoError(err)
	require.True(solved)
	require.Equal(2, candidates.Singleton("A"))
	require.Equal(1, candidates.Singleton("B"))
}

func TestSolveResolvesEqualityChainByPropagation(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(3)
	require.NoError(p.AddRule("A+B=3"))
	require.NoError(p.AddRule("A=1"))

	s := New(p)
	solved, candidates, err := s.Solve(10)
	require.NoError(err)
	require.True(solved)
	require.Equal(1, candidates.Singleton("A"))
	require.Equal(2, candidates.Singleton("B"))
	require.Equal(3, candidates.Singleton("C"))
}

func TestSolveReportsUnsatisfiable(t *testing.T) {
	require := require.New(t)
	p := puzzle.New(2)
	require.NoError(p.AddRule("A>B"))
	require.NoError(p.AddRule("B>A"))

	s := New(p)
	_, _, err := s.Solve(10)
	require.Error(err)
	require.True(ErrUnsatisfiable.Is(err))
}

func TestSolveRespectsStepBudget(t *testing.T) {
	require := require.New(t)
	// three free variables with no rules at all: nothing ever narrows,
	// so even an exhausted budget must return unsolved, not an error.
	p := puzzle.New(3)
	s := New(p)
	solved, candidates, err := s.Solve(1)
	require.NoError(err)
	require.False(solved)
	require.NotNil(candidates)
}
