package generator

import (
	"math/rand/v2"

	"github.com/latticepuzzle/numogrid/pkg/algebra"
)

const emitAttempts = 64

// weightedChoice draws x uniformly from [1, sum(weights)] and returns
// the index of the first cumulative bucket reaching x.
func weightedChoice(rng *rand.Rand, weights [2]int) int {
	total := weights[0] + weights[1]
	x := 1 + rng.IntN(total)
	s := 0
	for i, w := range weights {
		s += w
		if s >= x {
			return i
		}
	}
	return len(weights) - 1
}

var additiveOps = []string{algebra.OpAdd, algebra.OpSub}

// randExpression builds a random arithmetic expression tree: a leaf
// (variable or number) or a deeper node, with AddMul choosing between
// an additive operator (uniform +/-) and multiplicative (*); once a "*"
// node is chosen, further recursion on that path is restricted to "*"
// to avoid the need for parenthesised multiplication over addition.
func randExpression(rng *rand.Rand, vars []string, numberRange [2]int, w Weights, mulOnly bool) *algebra.Expression {
	if weightedChoice(rng, w.ValExp) == 0 {
		if weightedChoice(rng, w.VarNum) == 0 {
			return algebra.VarExpr(vars[rng.IntN(len(vars))])
		}
		lo, hi := numberRange[0], numberRange[1]
		return algebra.Int(lo + rng.IntN(hi-lo+1))
	}
	var op string
	if mulOnly || weightedChoice(rng, w.AddMul) == 1 {
		op = algebra.OpMul
	} else {
		op = additiveOps[rng.IntN(len(additiveOps))]
	}
	next := op == algebra.OpMul
	lhs := randExpression(rng, vars, numberRange, w, next)
	rhs := randExpression(rng, vars, numberRange, w, next)
	return algebra.NewOp(op, lhs, rhs)
}

var inequalityOps = []string{algebra.OpGt, algebra.OpGeq, algebra.OpNeq}

// randRelation builds a random relation between two random expressions;
// EqIneq chooses between "=" and one of {>, >=, !=} drawn uniformly.
func randRelation(rng *rand.Rand, vars []string, numberRange [2]int, w Weights) *algebra.Expression {
	var op string
	if weightedChoice(rng, w.EqIneq) == 0 {
		op = algebra.OpEq
	} else {
		op = inequalityOps[rng.IntN(len(inequalityOps))]
	}
	lhs := randExpression(rng, vars, numberRange, w, false)
	rhs := randExpression(rng, vars, numberRange, w, false)
	return algebra.NewOp(op, lhs, rhs)
}

var logicOps = []string{algebra.OpImpl, algebra.OpIff}

// EmitRandomRule builds a random rule per the full weighted grammar:
// either a plain relation, or an implication/biconditional between two
// relations. Candidate expressions that canonicalise to an ill-formed
// rule (e.g. all variables cancel out) are discarded and retried up to
// emitAttempts times.
func EmitRandomRule(rng *rand.Rand, vars []string, n int, w Weights) (*algebra.Rule, error) {
	numberRange := [2]int{1, n + 2}
	var lastErr error
	for attempt := 0; attempt < emitAttempts; attempt++ {
		var expr *algebra.Expression
		if weightedChoice(rng, w.LogicEq) == 0 {
			op := logicOps[rng.IntN(len(logicOps))]
			expr = algebra.NewOp(op, randRelation(rng, vars, numberRange, w), randRelation(rng, vars, numberRange, w))
		} else {
			expr = randRelation(rng, vars, numberRange, w)
		}
		rule, err := algebra.NewRuleFromExpr(expr, false)
		if err == nil {
			return rule, nil
		}
		lastErr = err
	}
	return nil, ErrEmitExhausted.New(emitAttempts, lastErr)
}

var simpleArithOps = []string{algebra.OpAdd, algebra.OpSub, algebra.OpMul}

// EmitSimpleRule builds a rule of the fixed shape
// "var (+/-/*) var (>/=/!=) number", rewriting a drawn "<" into ">"
// with its operands swapped. A shallower, faster-to-reason-about
// alternative to EmitRandomRule. A draw that canonicalises to an
// ill-formed rule (e.g. "A-A", whose variables cancel) is discarded and
// retried up to emitAttempts times.
func EmitSimpleRule(rng *rand.Rand, vars []string) (*algebra.Rule, error) {
	var lastErr error
	for attempt := 0; attempt < emitAttempts; attempt++ {
		rule, err := emitSimpleRuleOnce(rng, vars)
		if err == nil {
			return rule, nil
		}
		lastErr = err
	}
	return nil, ErrEmitExhausted.New(emitAttempts, lastErr)
}

func emitSimpleRuleOnce(rng *rand.Rand, vars []string) (*algebra.Rule, error) {
	v1 := vars[rng.IntN(len(vars))]
	v2 := vars[rng.IntN(len(vars))]
	op1 := simpleArithOps[rng.IntN(len(simpleArithOps))]
	lhs := algebra.NewOp(op1, algebra.VarExpr(v1), algebra.VarExpr(v2))
	rhs := algebra.Int(1 + rng.IntN(10))

	var op0 string
	switch rng.IntN(4) {
	case 0:
		op0 = algebra.OpGt
	case 1:
		op0 = algebra.OpGt
		lhs, rhs = rhs, lhs
	case 2:
		op0 = algebra.OpEq
	default:
		op0 = algebra.OpNeq
	}

	expr := algebra.NewOp(op0, lhs, rhs)
	return algebra.NewRuleFromExpr(expr, false)
}
