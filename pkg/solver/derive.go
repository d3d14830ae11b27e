package solver

import "github.com/latticepuzzle/numogrid/pkg/algebra"

// deriveExpressions looks at every "=" rule currently known and, for
// each variable that occurs in it exactly once, records the "v = E"
// expression Express produces — skipping ill-formed results and
// duplicates already on file.
func (s *Solver) deriveExpressions() {
	for _, rule := range s.Rules {
		if rule.Op() != algebra.OpEq {
			continue
		}
		for _, v := range rule.Vars {
			if rule.VarCounts[v] != 1 {
				continue
			}
			expressed, err := algebra.Express(rule, v)
			if err != nil {
				continue
			}
			h := expressed.Hash()
			if s.exprHashes[v][h] {
				continue
			}
			s.exprHashes[v][h] = true
			s.Expressions[v] = append(s.Expressions[v], expressed)
			s.logf("derived expression %s", expressed)
		}
	}
}

// applyExpressions substitutes every known "v = E" expression into
// every rule mentioning v, adding each well-formed, not-yet-seen result
// to the working rule set.
func (s *Solver) applyExpressions() {
	var produced []*algebra.Rule
	for _, rule := range s.Rules {
		for _, v := range rule.Vars {
			for _, expressed := range s.Expressions[v] {
				substituted, err := algebra.Substitute(rule, v, expressed.Expr.RHS)
				if err != nil {
					continue
				}
				produced = append(produced, substituted)
			}
		}
	}
	for _, r := range produced {
		if s.addRule(r) {
			s.logf("new derived rule %s", r)
		}
	}
}
