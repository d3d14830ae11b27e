package algebra

import (
	"hash/fnv"
	"sort"
)

// Rule is a top-level Expression whose root operator is relational or
// logical, plus derived metadata: the sorted set of variables it
// mentions, per-variable occurrence counts, and a canonical string used
// for identity/hashing.
type Rule struct {
	Expr *Expression

	// IsVariableExpression marks a rule of the shape "v = E" produced by
	// Express, where E never mentions v. It changes how Canonical treats
	// the rule: E alone is expanded, v is never moved off the LHS.
	IsVariableExpression bool

	Vars        []string
	VarCounts   map[string]int
	CanonicalStr string
}

// NewRule parses s and canonicalises it into a Rule. The root of the
// parsed expression must be relational or logical.
func NewRule(s string) (*Rule, error) {
	expr, err := ParseExpr(s)
	if err != nil {
		return nil, err
	}
	if expr.Kind != OpNode || KindOf(expr.Op) == Arithmetic {
		return nil, ErrParse.New("rule root must be relational or logical: " + s)
	}
	return NewRuleFromExpr(expr, false)
}

// NewRuleFromExpr builds a Rule from an already-parsed expression,
// canonicalising it. Use isVariableExpression for "v = E" rules produced
// by Express, to keep v pinned on the LHS during canonicalisation.
func NewRuleFromExpr(expr *Expression, isVariableExpression bool) (*Rule, error) {
	canon, err := Canonical(expr, isVariableExpression)
	if err != nil {
		return nil, err
	}
	r := &Rule{Expr: canon, IsVariableExpression: isVariableExpression}
	r.updateMeta()
	return r, nil
}

func (r *Rule) updateMeta() {
	vars := map[string]struct{}{}
	counts := map[string]int{}
	walkVars(r.Expr, func(v string) {
		vars[v] = struct{}{}
		counts[v]++
	})
	sorted := make([]string, 0, len(vars))
	for v := range vars {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)
	r.Vars = sorted
	r.VarCounts = counts
	r.CanonicalStr = Render(r.Expr)
}

// String returns the canonical rule string.
func (r *Rule) String() string {
	return r.CanonicalStr
}

// Hash returns the identity hash of the rule's canonical string, used by
// the solver to deduplicate derived rules.
func (r *Rule) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(r.CanonicalStr))
	return h.Sum64()
}

// Op returns the rule's root operator.
func (r *Rule) Op() string {
	return r.Expr.Op
}

// IsTrivialSingleVariableEquality reports whether the rule has the
// uninformative shape "X = c": a single-variable equality pinning that
// variable straight to a constant.
func (r *Rule) IsTrivialSingleVariableEquality() bool {
	return r.Op() == OpEq && len(r.Vars) == 1
}
