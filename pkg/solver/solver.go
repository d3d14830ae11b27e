package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/latticepuzzle/numogrid/pkg/algebra"
	"github.com/latticepuzzle/numogrid/pkg/puzzle"
)

// Solver holds the mutable state of a logic-based solve: the shrinking
// candidate map, the working rule set (seed rules plus every derived
// rule reached so far, deduplicated by hash), and the per-variable bank
// of discovered "v = expression" rules used to substitute variables out
// of other rules.
type Solver struct {
	Puzzle     *puzzle.Puzzle
	Candidates puzzle.CandidateSet
	Rules      []*algebra.Rule

	// Expressions maps a variable to every distinct "v = E" rule derived
	// for it so far.
	Expressions map[string][]*algebra.Rule

	ruleHashes map[uint64]bool
	exprHashes map[string]map[uint64]bool

	// Log receives step-by-step tracing when non-nil.
	Log *logrus.Entry
}

// New builds a solver over p's variables and seed rules.
func New(p *puzzle.Puzzle) *Solver {
	s := &Solver{
		Puzzle:      p,
		Candidates:  puzzle.NewCandidateSet(p.Vars, p.N),
		Expressions: make(map[string][]*algebra.Rule, len(p.Vars)),
		ruleHashes:  make(map[uint64]bool),
		exprHashes:  make(map[string]map[uint64]bool, len(p.Vars)),
	}
	for _, v := range p.Vars {
		s.exprHashes[v] = make(map[uint64]bool)
	}
	for _, r := range p.Rules {
		s.addRule(r)
	}
	return s
}

func (s *Solver) addRule(r *algebra.Rule) bool {
	h := r.Hash()
	if s.ruleHashes[h] {
		return false
	}
	s.ruleHashes[h] = true
	s.Rules = append(s.Rules, r)
	return true
}

func (s *Solver) logf(format string, args ...interface{}) {
	if s.Log != nil {
		s.Log.Debugf(format, args...)
	}
}

// Solve runs reduction to fixpoint interleaved with expression
// derivation/application until every variable's candidate set is a
// singleton (solved), maxSteps outer iterations pass without reaching
// one (maxSteps <= 0 means unbounded), or reduction proves the puzzle
// unsatisfiable.
func (s *Solver) Solve(maxSteps int) (bool, puzzle.CandidateSet, error) {
	step := 0
	for {
		step++
		if err := s.reduceToFixpoint(); err != nil {
			return false, nil, err
		}
		if s.Candidates.AllSingletons() {
			s.logf("solved after %d outer steps", step)
			return true, s.Candidates, nil
		}
		if maxSteps > 0 && step >= maxSteps {
			s.logf("step budget %d exhausted, unsolved", maxSteps)
			return false, s.Candidates, nil
		}
		s.deriveExpressions()
		s.applyExpressions()
	}
}
