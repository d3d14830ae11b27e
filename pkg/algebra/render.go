package algebra

import "strconv"

// Render serialises an Expression back to a rule string, adding
// parentheses around any child that is itself an Op node, regardless of
// whether the enclosing operator would actually require them.
func Render(e *Expression) string {
	switch e.Kind {
	case LeafInt:
		return strconv.Itoa(e.IntValue)
	case LeafVar:
		return e.Var
	default:
		lhs := Render(e.LHS)
		if !e.LHS.IsLeaf() {
			lhs = "(" + lhs + ")"
		}
		rhs := Render(e.RHS)
		if !e.RHS.IsLeaf() {
			rhs = "(" + rhs + ")"
		}
		return lhs + e.Op + rhs
	}
}
