package algebra

import "sort"

// monomial is a sorted multiset of variable letters, e.g. "AAB" for A²B;
// the empty string represents the constant monomial.
type monomial = string

// polynomial maps a monomial to its (possibly negative, intermediate)
// integer coefficient.
type polynomial map[monomial]int

func mergeMonomials(a, b monomial) monomial {
	letters := append([]byte(a), []byte(b)...)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func addPoly(dst polynomial, src polynomial, scale int) {
	for k, c := range src {
		dst[k] += c * scale
	}
}

func mulPoly(a, b polynomial) polynomial {
	out := polynomial{}
	for ka, ca := range a {
		for kb, cb := range b {
			out[mergeMonomials(ka, kb)] += ca * cb
		}
	}
	return out
}

// expand turns an arithmetic Expression into a polynomial, distributing
// products over sums and collecting like terms. Division only reduces
// when the divisor is a nonzero constant that evenly divides every
// coefficient of the dividend; any other division is ill-formed.
func expand(e *Expression) (polynomial, bool) {
	switch e.Kind {
	case LeafInt:
		return polynomial{"": e.IntValue}, true
	case LeafVar:
		return polynomial{e.Var: 1}, true
	case OpNode:
		lp, ok := expand(e.LHS)
		if !ok {
			return nil, false
		}
		rp, ok := expand(e.RHS)
		if !ok {
			return nil, false
		}
		switch e.Op {
		case OpAdd:
			out := polynomial{}
			addPoly(out, lp, 1)
			addPoly(out, rp, 1)
			return out, true
		case OpSub:
			out := polynomial{}
			addPoly(out, lp, 1)
			addPoly(out, rp, -1)
			return out, true
		case OpMul:
			return mulPoly(lp, rp), true
		case OpDiv:
			if len(rp) != 1 {
				return nil, false
			}
			divisor, isConst := rp[""]
			if !isConst || divisor == 0 {
				return nil, false
			}
			out := polynomial{}
			for k, c := range lp {
				if c%divisor != 0 {
					return nil, false
				}
				out[k] = c / divisor
			}
			return out, true
		}
	}
	unreachable("expand")
	return nil, false
}

// hasVariableTerm reports whether p has any non-constant monomial with a
// nonzero coefficient.
func hasVariableTerm(p polynomial) bool {
	for k, c := range p {
		if k != "" && c != 0 {
			return true
		}
	}
	return false
}

// monomialExpr builds the left-associated product-of-letters expression
// for a monomial key.
func monomialExpr(key monomial) *Expression {
	acc := VarExpr(string(key[0]))
	for i := 1; i < len(key); i++ {
		acc = NewOp(OpMul, acc, VarExpr(string(key[i])))
	}
	return acc
}

// termExpr renders one (monomial, positive coefficient) pair as an
// expression: the monomial alone when the coefficient is 1, otherwise a
// scaled product; a bare integer for the constant monomial.
func termExpr(key monomial, coeff int) *Expression {
	if key == "" {
		return Int(coeff)
	}
	if coeff == 1 {
		return monomialExpr(key)
	}
	return NewOp(OpMul, Int(coeff), monomialExpr(key))
}

// sortedKeys returns non-empty monomial keys with a nonzero coefficient
// of the requested sign, alphabetically ordered.
func sortedKeys(p polynomial, positive bool) []monomial {
	var keys []monomial
	for k, c := range p {
		if k == "" {
			continue
		}
		if (positive && c > 0) || (!positive && c < 0) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// sumChain renders the ordered monomials (each known to have a
// coefficient of the given sign) as a left-associated sum of their
// absolute-value terms, used for the two sides of a canonical relation.
func sumChain(p polynomial, keys []monomial, positive bool, constant int) *Expression {
	var acc *Expression
	for _, k := range keys {
		c := p[k]
		if !positive {
			c = -c
		}
		t := termExpr(k, c)
		if acc == nil {
			acc = t
		} else {
			acc = NewOp(OpAdd, acc, t)
		}
	}
	if constant != 0 {
		t := Int(constant)
		if acc == nil {
			acc = t
		} else {
			acc = NewOp(OpAdd, acc, t)
		}
	}
	if acc == nil {
		return Int(0)
	}
	return acc
}

// canonicalRelation rewrites a relational expression "lhs OP rhs" into
// canonical form: expand lhs-rhs, then split by sign so positive terms
// land on a new LHS and the absolute value of negative terms on a new
// RHS, constant placed on whichever side keeps both sides non-empty.
func canonicalRelation(op string, lhs, rhs *Expression) (*Expression, error) {
	diff, ok := expand(NewOp(OpSub, lhs, rhs))
	if !ok {
		return nil, ErrIllFormedRule.New("irreducible division or exponentiation")
	}
	if !hasVariableTerm(diff) {
		return nil, ErrIllFormedRule.New("no variable remains")
	}

	posKeys := sortedKeys(diff, true)
	negKeys := sortedKeys(diff, false)
	constant := diff[""]

	posConstant, negConstant := 0, 0
	switch {
	case len(posKeys) > 0:
		if constant > 0 {
			posConstant = constant
		} else if constant < 0 {
			negConstant = -constant
		}
	case len(negKeys) > 0:
		if constant > 0 {
			posConstant = constant
		} else if constant < 0 {
			negConstant = -constant
		}
	default:
		// both sides empty of variables: unreachable, hasVariableTerm
		// already guarantees at least one of posKeys/negKeys is non-empty.
		unreachable("canonicalRelation: no terms on either side")
	}

	newLHS := sumChain(diff, posKeys, true, posConstant)
	newRHS := sumChain(diff, negKeys, false, negConstant)
	return NewOp(op, newLHS, newRHS), nil
}

// canonicalVariableExpression canonicalises a "v = E" rule (E never
// containing v) by expanding only E, keeping v pinned on the LHS. It
// must NOT run E through the sign-splitting relation logic above, or the
// extracted variable would be moved off the LHS.
func canonicalVariableExpression(v string, rhs *Expression) (*Expression, error) {
	p, ok := expand(rhs)
	if !ok {
		return nil, ErrIllFormedRule.New("irreducible division or exponentiation")
	}
	posKeys := sortedKeys(p, true)
	// render every nonzero-coefficient term, positive and negative, as a
	// single signed sum (unlike canonicalRelation, no sign partitioning
	// across sides: this whole polynomial lives on the RHS).
	var acc *Expression
	emit := func(k monomial, c int) {
		t := termExpr(k, absInt(c))
		if acc == nil {
			if c < 0 {
				acc = NewOp(OpSub, Int(0), t)
			} else {
				acc = t
			}
			return
		}
		if c < 0 {
			acc = NewOp(OpSub, acc, t)
		} else {
			acc = NewOp(OpAdd, acc, t)
		}
	}
	for _, k := range posKeys {
		emit(k, p[k])
	}
	for _, k := range sortedKeys(p, false) {
		emit(k, p[k])
	}
	if c := p[""]; c != 0 {
		emit("", c)
	}
	if acc == nil {
		acc = Int(0)
	}
	return NewOp(OpEq, VarExpr(v), acc), nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Canonical rewrites rule into its canonical form: for relational rules
// it expands and sign-splits; for logical rules it canonicalises each
// relational side independently; variable-expression rules ("v = E")
// keep E on the RHS. Returns ErrIllFormedRule if canonicalisation fails.
func Canonical(expr *Expression, isVariableExpression bool) (*Expression, error) {
	if isVariableExpression {
		return canonicalVariableExpression(expr.LHS.Var, expr.RHS)
	}
	switch KindOf(expr.Op) {
	case Relational:
		return canonicalRelation(expr.Op, expr.LHS, expr.RHS)
	case Logical:
		lhs, err := canonicalRelation(expr.LHS.Op, expr.LHS.LHS, expr.LHS.RHS)
		if err != nil {
			return nil, err
		}
		rhs, err := canonicalRelation(expr.RHS.Op, expr.RHS.LHS, expr.RHS.RHS)
		if err != nil {
			return nil, err
		}
		return NewOp(expr.Op, lhs, rhs), nil
	}
	unreachable("Canonical")
	return nil, nil
}
