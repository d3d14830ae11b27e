package algebra

// NodeKind discriminates the three shapes an Expression node can take.
type NodeKind int

const (
	// LeafInt is a non-negative integer literal.
	LeafInt NodeKind = iota
	// LeafVar is a single-uppercase-letter variable reference.
	LeafVar
	// OpNode is an operator applied to two child expressions.
	OpNode
)

// OperatorKind partitions operator symbols into the three families the
// grammar admits at different tree positions.
type OperatorKind int

const (
	Arithmetic OperatorKind = iota
	Relational
	Logical
)

// Operator symbols, kept ASCII to match the external rule-string
// grammar; "<" and "<=" never appear in a canonical tree, they are
// rewritten to ">" / ">=" with swapped operands during parsing.
const (
	OpAdd  = "+"
	OpSub  = "-"
	OpMul  = "*"
	OpDiv  = "/"
	OpEq   = "="
	OpNeq  = "!="
	OpGt   = ">"
	OpGeq  = ">="
	OpImpl = "=>"
	OpIff  = "<=>"
)

// KindOf returns the family an operator symbol belongs to.
func KindOf(op string) OperatorKind {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return Arithmetic
	case OpEq, OpNeq, OpGt, OpGeq:
		return Relational
	case OpImpl, OpIff:
		return Logical
	}
	unreachable("KindOf(" + op + ")")
	return Arithmetic
}

// Expression is a tagged tree node: either a Leaf (int literal or
// variable) or an Op node with two children. A zero-value Expression is
// never valid; use the constructors below.
type Expression struct {
	Kind NodeKind

	// valid when Kind == LeafInt
	IntValue int
	// valid when Kind == LeafVar
	Var string

	// valid when Kind == OpNode
	Op       string
	LHS, RHS *Expression
}

// Int builds an integer literal leaf.
func Int(n int) *Expression {
	return &Expression{Kind: LeafInt, IntValue: n}
}

// VarExpr builds a variable reference leaf.
func VarExpr(name string) *Expression {
	return &Expression{Kind: LeafVar, Var: name}
}

// NewOp builds an operator node over two children.
func NewOp(op string, lhs, rhs *Expression) *Expression {
	return &Expression{Kind: OpNode, Op: op, LHS: lhs, RHS: rhs}
}

// IsLeaf reports whether e is a Leaf (int or var) rather than an Op node.
func (e *Expression) IsLeaf() bool {
	return e.Kind != OpNode
}

// HasVar reports whether name occurs anywhere in e.
func (e *Expression) HasVar(name string) bool {
	switch e.Kind {
	case LeafInt:
		return false
	case LeafVar:
		return e.Var == name
	default:
		return e.LHS.HasVar(name) || e.RHS.HasVar(name)
	}
}

// walkVars calls visit for every variable leaf in e, in left-to-right
// order, including repeats.
func walkVars(e *Expression, visit func(string)) {
	switch e.Kind {
	case LeafVar:
		visit(e.Var)
	case OpNode:
		walkVars(e.LHS, visit)
		walkVars(e.RHS, visit)
	}
}

// Clone deep-copies an expression tree.
func (e *Expression) Clone() *Expression {
	switch e.Kind {
	case LeafInt:
		return Int(e.IntValue)
	case LeafVar:
		return VarExpr(e.Var)
	default:
		return NewOp(e.Op, e.LHS.Clone(), e.RHS.Clone())
	}
}
