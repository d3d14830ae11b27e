// Package bruteforce implements the deterministic, complete permutation
// counter the generator uses to judge puzzle uniqueness: a backtracking
// search over distinct variable-to-value assignments.
package bruteforce

import (
	"github.com/latticepuzzle/numogrid/pkg/algebra"
	"github.com/latticepuzzle/numogrid/pkg/puzzle"
)

// Count enumerates assignments of p's variables to distinct values in
// 1..N and evaluates every rule against each. If candidates is nil, all
// N! permutations are tried; otherwise a variable may only take values
// from its own candidate set, still enforcing distinctness across
// variables. Returns the number of satisfying assignments and the last
// one found (nil if none).
func Count(p *puzzle.Puzzle, candidates puzzle.CandidateSet) (int, map[string]int) {
	domains := make([][]int, len(p.Vars))
	for i, v := range p.Vars {
		if candidates != nil {
			domains[i] = candidates.Sorted(v)
		} else {
			domains[i] = fullRange(p.N)
		}
	}

	count := 0
	var witness map[string]int
	values := make(map[string]int, len(p.Vars))
	used := make(map[int]bool, p.N)

	var rec func(i int)
	rec = func(i int) {
		if i == len(p.Vars) {
			for _, rule := range p.Rules {
				if !algebra.Eval(rule, values) {
					return
				}
			}
			count++
			witness = cloneAssignment(values)
			return
		}
		v := p.Vars[i]
		for _, x := range domains[i] {
			if used[x] {
				continue
			}
			used[x] = true
			values[v] = x
			rec(i + 1)
			delete(values, v)
			used[x] = false
		}
	}
	rec(0)
	return count, witness
}

func fullRange(n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = i + 1
	}
	return out
}

func cloneAssignment(values map[string]int) map[string]int {
	out := make(map[string]int, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
