package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escript/escript/ast"
	"github.com/escript/escript/builder"
)

func TestMatchExactShape(t *testing.T) {
	actual := builder.Call(builder.Ident("f"), builder.Number(1), builder.Str("x"))
	same := builder.Call(builder.Ident("f"), builder.Number(1), builder.Str("x"))
	different := builder.Call(builder.Ident("g"), builder.Number(1), builder.Str("x"))

	require.True(t, ast.Match(actual, same))
	require.False(t, ast.Match(actual, different))
}

func TestMatchAny(t *testing.T) {
	actual := builder.Call(builder.Ident("f"), builder.Number(1))

	pattern := ast.Expression{Expr: &ast.CallExpression{
		Callee:       &ast.Expression{Expr: ast.AnyNode()},
		ArgumentList: ast.Expressions{{Expr: ast.AnyNode()}},
	}}
	require.True(t, ast.Match(actual, pattern))

	// Any does not paper over a wrong argument count.
	tooMany := builder.Call(builder.Ident("f"), builder.Number(1), builder.Number(2))
	require.False(t, ast.Match(tooMany, pattern))
}

func TestMatchCapture(t *testing.T) {
	actual := builder.Call(builder.Member(builder.Ident("console"), "log"), builder.Str("hi"))

	var callee ast.Expr
	var arg ast.Expr
	pattern := ast.Expression{Expr: &ast.CallExpression{
		Callee:       &ast.Expression{Expr: ast.CaptureNode(&callee)},
		ArgumentList: ast.Expressions{{Expr: ast.CaptureNode(&arg)}},
	}}

	require.True(t, ast.Match(actual, pattern))

	member, ok := callee.(*ast.MemberExpression)
	require.True(t, ok, "captured callee should be the member expression")
	require.Equal(t, "console", member.Object.Expr.(*ast.Identifier).Name)
	require.Equal(t, "hi", arg.(*ast.StringLiteral).Value)
}

func TestMatchCaptureConcreteType(t *testing.T) {
	actual := builder.Binary(ast.Plus, builder.Ident("a"), builder.Number(2))

	var lhs *ast.Identifier
	pattern := ast.Expression{Expr: &ast.BinaryExpression{
		Operator: ast.Plus,
		Left:     &ast.Expression{Expr: ast.CaptureNode(&lhs)},
		Right:    &ast.Expression{Expr: ast.AnyNode()},
	}}

	require.True(t, ast.Match(actual, pattern))
	require.Equal(t, "a", lhs.Name)

	// A capture slot with an incompatible output type fails the match
	// instead of storing garbage.
	var wrong *ast.StringLiteral
	badPattern := ast.Expression{Expr: &ast.BinaryExpression{
		Operator: ast.Plus,
		Left:     &ast.Expression{Expr: ast.CaptureNode(&wrong)},
		Right:    &ast.Expression{Expr: ast.AnyNode()},
	}}
	require.False(t, ast.Match(actual, badPattern))
}

func TestMatchOperatorsDistinguish(t *testing.T) {
	plus := builder.Binary(ast.Plus, builder.Ident("a"), builder.Ident("b"))
	minus := builder.Binary(ast.Minus, builder.Ident("a"), builder.Ident("b"))
	require.False(t, ast.Match(plus, minus))

	eq := builder.Assign(ast.Assign, builder.Ident("a"), builder.Ident("b"))
	add := builder.Assign(ast.AddAssign, builder.Ident("a"), builder.Ident("b"))
	require.False(t, ast.Match(eq, add))
}

func TestEqualTreatsNilAndEmptyListsAlike(t *testing.T) {
	a := builder.Array()
	b := ast.Expression{Expr: &ast.ArrayLiteral{Value: ast.Expressions{}}}
	require.True(t, ast.Equal(&a, &b))
}
