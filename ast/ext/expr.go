package ext

import "github.com/escript/escript/ast"

// IsNumber returns true if the expression is a number literal.
func IsNumber(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.NumberLiteral)
	return ok
}

// IsString returns true if the expression is a string literal.
func IsString(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.StringLiteral)
	return ok
}

// IsBoolean returns true if the expression is a boolean literal.
func IsBoolean(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.BooleanLiteral)
	return ok
}

// IsNull returns true if the expression is the null literal.
func IsNull(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.NullLiteral)
	return ok
}

// IsLiteral returns true for the scalar literal sub-union: null, boolean,
// number and string. Regex and template literals are not part of it.
func IsLiteral(n *ast.Expression) bool {
	_, ok := n.Expr.(ast.Lit)
	return ok
}

// IsAssignTarget returns true if the expression has a form that can appear
// on the left of an assignment or under an update operator: an identifier or
// a member access. The tree permits any expression there; this predicate is
// how a legality pass tells the difference.
func IsAssignTarget(n *ast.Expression) bool {
	switch n.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

// IsSpread returns true if the expression is a spread element.
func IsSpread(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.SpreadElement)
	return ok
}
