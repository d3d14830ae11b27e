package solver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/latticepuzzle/numogrid/pkg/algebra"
	"github.com/latticepuzzle/numogrid/pkg/puzzle"
)

// reduceToFixpoint applies the three reduction strategies in turn,
// restarting from the first whenever any of them changes the candidate
// map, until a full pass leaves it untouched.
func (s *Solver) reduceToFixpoint() error {
	for {
		changed := false

		for _, rule := range s.Rules {
			ok, updated := reduceByRule(rule, s.Candidates)
			if ok {
				s.Candidates = updated
				changed = true
				s.logf("rule %s narrowed candidates", rule)
				if s.Candidates.AnyEmpty() {
					return ErrUnsatisfiable.New()
				}
			}
		}
		if changed {
			continue
		}

		if ok, updated := reduceNakedSubsets(s.Candidates); ok {
			s.Candidates = updated
			s.logf("naked subset strategy narrowed candidates")
			if s.Candidates.AnyEmpty() {
				return ErrUnsatisfiable.New()
			}
			continue
		}

		if ok, updated := reduceHiddenSubsets(s.Candidates); ok {
			s.Candidates = updated
			s.logf("hidden subset strategy narrowed candidates")
			if s.Candidates.AnyEmpty() {
				return ErrUnsatisfiable.New()
			}
			continue
		}

		return nil
	}
}

// reduceByRule (R1) discards, for each variable the rule mentions, any
// candidate value for which no assignment of the rule's other variables
// (drawn from their own candidate sets, respecting distinctness) makes
// the rule true.
func reduceByRule(rule *algebra.Rule, candidates puzzle.CandidateSet) (bool, puzzle.CandidateSet) {
	updated := candidates.Clone()
	changed := false
	cont := true
	for cont {
		cont = false
		for _, fixed := range rule.Vars {
			narrowed := map[int]struct{}{}
			for val := range updated[fixed] {
				used := map[int]bool{val: true}
				chosen := map[string]int{fixed: val}
				if ruleHasViableAssignment(rule, fixed, updated, used, chosen, 0) {
					narrowed[val] = struct{}{}
				}
			}
			if !setsEqual(narrowed, updated[fixed]) {
				updated[fixed] = narrowed
				changed = true
				cont = true
				break
			}
		}
	}
	return changed, updated
}

// ruleHasViableAssignment searches for distinct values for rule.Vars
// (other than fixed, whose value is already chosen) drawn from their
// candidate sets such that the rule evaluates true.
func ruleHasViableAssignment(rule *algebra.Rule, fixed string, candidates puzzle.CandidateSet, used map[int]bool, chosen map[string]int, idx int) bool {
	if idx == len(rule.Vars) {
		return algebra.Eval(rule, chosen)
	}
	v := rule.Vars[idx]
	if v == fixed {
		return ruleHasViableAssignment(rule, fixed, candidates, used, chosen, idx+1)
	}
	for val := range candidates[v] {
		if used[val] {
			continue
		}
		used[val] = true
		chosen[v] = val
		if ruleHasViableAssignment(rule, fixed, candidates, used, chosen, idx+1) {
			return true
		}
		used[val] = false
		delete(chosen, v)
	}
	return false
}

// reduceNakedSubsets (R2) finds groups of k variables whose candidate
// sets are identical and have exactly k values, and removes those
// values from every other variable's candidate set.
func reduceNakedSubsets(candidates puzzle.CandidateSet) (bool, puzzle.CandidateSet) {
	updated := candidates.Clone()
	changed := false
	cont := true
	for cont {
		cont = false
		groups := map[string][]string{}
		for v, vals := range updated {
			groups[valuesKey(vals)] = append(groups[valuesKey(vals)], v)
		}
		for key, vars := range groups {
			subset := parseValuesKey(key)
			if len(subset) == 0 || len(subset) != len(vars) {
				continue
			}
			touched := false
			for other, vals := range updated {
				if containsVar(vars, other) {
					continue
				}
				for _, x := range subset {
					if _, ok := vals[x]; ok {
						delete(vals, x)
						touched = true
					}
				}
			}
			if touched {
				changed = true
				cont = true
				break
			}
		}
	}
	return changed, updated
}

// reduceHiddenSubsets (R3) finds a value that, across every variable it
// still appears in, appears in exactly as many variables as there are
// candidate occurrences of some shared set of values — pinning those
// variables to exactly that value set.
func reduceHiddenSubsets(candidates puzzle.CandidateSet) (bool, puzzle.CandidateSet) {
	updated := candidates.Clone()
	changed := false
	cont := true
	for cont {
		cont = false
		valueVars := map[int][]string{}
		for v, vals := range updated {
			for x := range vals {
				valueVars[x] = append(valueVars[x], v)
			}
		}
		varsToValues := map[string][]int{}
		varsToKey := map[string][]string{}
		for x, vars := range valueVars {
			key := varsKey(vars)
			varsToValues[key] = append(varsToValues[key], x)
			varsToKey[key] = vars
		}
		for key, values := range varsToValues {
			vars := varsToKey[key]
			if len(vars) != len(values) {
				continue
			}
			pinned := map[int]struct{}{}
			for _, x := range values {
				pinned[x] = struct{}{}
			}
			touched := false
			for _, v := range vars {
				if !setsEqual(pinned, updated[v]) {
					updated[v] = map[int]struct{}{}
					for x := range pinned {
						updated[v][x] = struct{}{}
					}
					touched = true
				}
			}
			if touched {
				changed = true
				cont = true
				break
			}
		}
	}
	return changed, updated
}

func setsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for x := range a {
		if _, ok := b[x]; !ok {
			return false
		}
	}
	return true
}

func valuesKey(vals map[int]struct{}) string {
	xs := make([]int, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func parseValuesKey(key string) []int {
	if key == "" {
		return nil
	}
	parts := strings.Split(key, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		x, _ := strconv.Atoi(p)
		out[i] = x
	}
	return out
}

func varsKey(vars []string) string {
	cp := append([]string(nil), vars...)
	sort.Strings(cp)
	return strings.Join(cp, ",")
}

func containsVar(vars []string, v string) bool {
	for _, x := range vars {
		if x == v {
			return true
		}
	}
	return false
}
