package algebra

// inverseOp maps an arithmetic operator to the one that undoes it when
// isolating a variable.
var inverseOp = map[string]string{
	OpAdd: OpSub,
	OpSub: OpAdd,
	OpMul: OpDiv,
	OpDiv: OpMul,
}

// Express requires rule.Op() == "=" and exactly one occurrence of v, and
// produces an equivalent rule whose LHS is the single leaf v. It descends
// the side of the equation containing v, at each step moving the sibling
// subtree to the other side using the inverse of the current operator,
// with the LHS/RHS roles of a "-" or "/" node swapped as the walk enters
// its RHS.
func Express(rule *Rule, v string) (*Rule, error) {
	if rule.Op() != OpEq {
		return nil, ErrIllFormedRule.New("express requires an '=' rule")
	}
	if rule.VarCounts[v] != 1 {
		return nil, ErrIllFormedRule.New("express requires exactly one occurrence of " + v)
	}

	lhs, rhs := rule.Expr.LHS, rule.Expr.RHS
	if rhs.HasVar(v) {
		lhs, rhs = rhs, lhs
	}
	if !lhs.HasVar(v) {
		return nil, ErrIllFormedRule.New("variable not found: " + v)
	}

	reducible, result := expressRec(lhs, rhs, v)
	expr := NewOp(OpEq, reducible, result)
	return NewRuleFromExpr(expr, true)
}

// expressRec peels one layer off reducible (which contains v) per step,
// folding the peeled sibling into result with the appropriate inverse
// operator, until reducible is the bare leaf v.
func expressRec(reducible, result *Expression, v string) (*Expression, *Expression) {
	if reducible.Kind == LeafVar && reducible.Var == v {
		return reducible, result
	}
	var nextReducible, nextResult *Expression
	if reducible.LHS.HasVar(v) {
		// LHS op RHS = result  =>  LHS = result inverse(op) RHS
		nextReducible = reducible.LHS
		nextResult = NewOp(inverseOp[reducible.Op], result, reducible.RHS)
	} else if reducible.Op == OpAdd || reducible.Op == OpMul {
		// LHS op RHS = result, commutative  =>  RHS = result inverse(op) LHS
		nextReducible = reducible.RHS
		nextResult = NewOp(inverseOp[reducible.Op], result, reducible.LHS)
	} else {
		// LHS op RHS = result, op in {-, /}, v on RHS
		// LHS - RHS = result  =>  RHS = LHS - result
		// LHS / RHS = result  =>  RHS = LHS / result
		nextReducible = reducible.RHS
		nextResult = NewOp(reducible.Op, reducible.LHS, result)
	}
	return expressRec(nextReducible, nextResult, v)
}

// Substitute replaces every leaf occurrence of v in rule with expr,
// re-canonicalising the result. expr must not mention v.
func Substitute(rule *Rule, v string, expr *Expression) (*Rule, error) {
	replaced := substituteRec(rule.Expr, v, expr)
	return NewRuleFromExpr(replaced, false)
}

func substituteRec(e *Expression, v string, expr *Expression) *Expression {
	switch e.Kind {
	case LeafInt:
		return Int(e.IntValue)
	case LeafVar:
		if e.Var == v {
			return expr.Clone()
		}
		return VarExpr(e.Var)
	default:
		return NewOp(e.Op, substituteRec(e.LHS, v, expr), substituteRec(e.RHS, v, expr))
	}
}
