// Package generator builds puzzles at random: emit candidate rules
// until the brute-force solution count reaches exactly one, drop any
// rule that turns out redundant, and keep the whole attempt only if the
// logic solver can also crack it within a small step budget.
package generator

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/latticepuzzle/numogrid/pkg/algebra"
	"github.com/latticepuzzle/numogrid/pkg/bruteforce"
	"github.com/latticepuzzle/numogrid/pkg/puzzle"
	"github.com/latticepuzzle/numogrid/pkg/solver"
)

// emitFunc produces one random rule; EmitRandomRule and EmitSimpleRule
// (adapted to ignore the arguments they don't need) both satisfy it.
type emitFunc func(rng *rand.Rand, vars []string, n int, w Weights) (*algebra.Rule, error)

// logicSolveSteps bounds the outer step budget the generator demands
// of the logic solver before declaring an attempt unsuccessful.
const logicSolveSteps = 4

// defaultMaxAttempts bounds the otherwise-unbounded "try forever" outer
// retry loop, so a caller always gets a result or an error back.
const defaultMaxAttempts = 2000

// Generator owns its random source (never the package-global rand) so
// that two Generators with the same seed reproduce the same puzzle.
type Generator struct {
	N           int
	Vars        []string
	Weights     Weights
	MaxAttempts int

	rng *rand.Rand
	Log *logrus.Entry
}

// New builds a generator for puzzles of size n, seeded deterministically
// from seed.
func New(n int, seed uint64, weights Weights) *Generator {
	return &Generator{
		N:           n,
		Vars:        puzzle.Alphabet(n),
		Weights:     weights,
		MaxAttempts: defaultMaxAttempts,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *Generator) logf(format string, args ...interface{}) {
	if g.Log != nil {
		g.Log.Debugf(format, args...)
	}
}

// Generate repeatedly builds a fresh puzzle, reduces it to a unique
// solution, drops redundant rules, and accepts it only if the logic
// solver can also solve it within logicSolveSteps outer steps, bounded
// by MaxAttempts instead of looping forever.
func (g *Generator) Generate() (*puzzle.Puzzle, error) {
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	for attempt := 0; attempt < attempts; attempt++ {
		g.logf("generating puzzle, attempt %d", attempt+1)
		p := puzzle.New(g.N)
		if err := g.reduceUntilUnique(p, EmitRandomRule); err != nil {
			return nil, err
		}
		g.dropRedundantRules(p)

		sv := solver.New(p)
		sv.Log = g.Log
		solved, _, err := sv.Solve(logicSolveSteps)
		if err != nil {
			g.logf("puzzle unsatisfiable under logic solver, retrying")
			continue
		}
		if solved {
			g.logf("puzzle generated and logic-solvable after %d rules", len(p.Rules))
			return p, nil
		}
		g.logf("puzzle not logic-solvable within budget, retrying")
	}
	return nil, ErrAttemptsExceeded.New(attempts)
}

// GenerateSimple is Generate's shallow counterpart, emitting rules of
// EmitSimpleRule's fixed shape instead of the full weighted grammar.
func (g *Generator) GenerateSimple() (*puzzle.Puzzle, error) {
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	emitSimple := func(rng *rand.Rand, vars []string, n int, w Weights) (*algebra.Rule, error) {
		return EmitSimpleRule(rng, vars)
	}
	for attempt := 0; attempt < attempts; attempt++ {
		p := puzzle.New(g.N)
		if err := g.reduceUntilUnique(p, emitSimple); err != nil {
			return nil, err
		}
		g.dropRedundantRules(p)

		sv := solver.New(p)
		solved, _, err := sv.Solve(logicSolveSteps)
		if err != nil {
			continue
		}
		if solved {
			return p, nil
		}
	}
	return nil, ErrAttemptsExceeded.New(attempts)
}

// reduceUntilUnique appends rules from emit until the brute-force
// solution count is exactly one, backing out any rule that fails to
// shrink the count or that eliminates every solution. Rules of the
// trivial "X = c" single-variable form are discarded unemitted.
func (g *Generator) reduceUntilUnique(p *puzzle.Puzzle, emit emitFunc) error {
	count, _ := bruteforce.Count(p, nil)
	for {
		rule, err := emit(g.rng, g.Vars, g.N, g.Weights)
		if err != nil {
			return err
		}
		if rule.IsTrivialSingleVariableEquality() {
			continue
		}
		p.Rules = append(p.Rules, rule)
		newCount, _ := bruteforce.Count(p, nil)
		switch {
		case newCount == 1:
			return nil
		case newCount == 0 || newCount == count:
			p.Rules = p.Rules[:len(p.Rules)-1]
		default:
			count = newCount
		}
	}
}

// dropRedundantRules repeatedly removes the first rule whose absence
// leaves the solution count still exactly one, until no rule is
// redundant.
func (g *Generator) dropRedundantRules(p *puzzle.Puzzle) {
	for {
		dropped := false
		for i := range p.Rules {
			trial := p.WithoutRule(i)
			if cnt, _ := bruteforce.Count(trial, nil); cnt == 1 {
				p.Rules = trial.Rules
				dropped = true
				break
			}
		}
		if !dropped {
			return
		}
	}
}
