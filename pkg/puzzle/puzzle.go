// Package puzzle defines the shared Puzzle data model: a fixed size N,
// its derived variable alphabet, an ordered rule list, and the candidate
// set map the logic solver and brute-force counter operate over.
package puzzle

import (
	"github.com/latticepuzzle/numogrid/pkg/algebra"
)

// MaxSize bounds N: values stay within [1, N], no arbitrary-precision
// arithmetic is ever required.
const MaxSize = 10

// MinSize is the smallest puzzle this system generates or solves.
const MinSize = 2

// Alphabet returns the N single-uppercase-letter variable names for a
// puzzle of the given size, in order: A, B, C, ...
func Alphabet(n int) []string {
	vars := make([]string, n)
	for i := 0; i < n; i++ {
		vars[i] = string(rune('A' + i))
	}
	return vars
}

// Puzzle is size N with an ordered list of Rules. Rule order carries no
// semantic weight but is kept stable for presentation; the puzzle is
// mutated only by the generator, solvers treat it as read-only.
type Puzzle struct {
	N        int
	Vars     []string
	Rules    []*algebra.Rule
}

// New creates an empty puzzle of size n.
func New(n int) *Puzzle {
	return &Puzzle{N: n, Vars: Alphabet(n)}
}

// AddRule parses and appends a rule string.
func (p *Puzzle) AddRule(ruleStr string) error {
	r, err := algebra.NewRule(ruleStr)
	if err != nil {
		return err
	}
	p.Rules = append(p.Rules, r)
	return nil
}

// AddRules parses and appends several rule strings, stopping at the
// first parse error.
func (p *Puzzle) AddRules(ruleStrs []string) error {
	for _, s := range ruleStrs {
		if err := p.AddRule(s); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a puzzle with the same N and a copy of the rule slice
// (Rules themselves are immutable once constructed and are shared, not
// deep-copied).
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{N: p.N, Vars: p.Vars}
	c.Rules = append([]*algebra.Rule(nil), p.Rules...)
	return c
}

// WithoutRule returns a clone with the rule at index i removed.
func (p *Puzzle) WithoutRule(i int) *Puzzle {
	c := &Puzzle{N: p.N, Vars: p.Vars}
	c.Rules = make([]*algebra.Rule, 0, len(p.Rules)-1)
	c.Rules = append(c.Rules, p.Rules[:i]...)
	c.Rules = append(c.Rules, p.Rules[i+1:]...)
	return c
}
