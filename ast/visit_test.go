package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escript/escript/ast"
	"github.com/escript/escript/builder"
)

// identCollector records every identifier name in traversal order.
type identCollector struct {
	ast.NoopVisitor
	names []string
}

func newIdentCollector() *identCollector {
	c := &identCollector{}
	c.V = c
	return c
}

func (c *identCollector) VisitIdentifier(n *ast.Identifier) {
	c.names = append(c.names, n.Name)
}

func TestVisitOrderIsSourceOrder(t *testing.T) {
	e := builder.Binary(ast.Plus,
		builder.Ident("a"),
		builder.Call(builder.Ident("f"), builder.Ident("b")),
	)

	c := newIdentCollector()
	e.VisitWith(c)
	require.Equal(t, []string{"a", "f", "b"}, c.names)
}

func TestVisitConditionalVisitsTruthyBranchFirst(t *testing.T) {
	// The truthy branch lives in Alternate and is visited between Test and
	// Consequent, so the walk still follows source order.
	e := builder.Cond(builder.Ident("t"), builder.Ident("whenTrue"), builder.Ident("whenFalse"))

	c := newIdentCollector()
	e.VisitWith(c)
	require.Equal(t, []string{"t", "whenTrue", "whenFalse"}, c.names)
}

func TestVisitCoversStatementsAndJsx(t *testing.T) {
	p := builder.Script(
		builder.Let("x", builder.Number(1)),
		builder.IfElse(builder.Ident("x"),
			builder.ExprStmt(builder.Ident("yes")),
			builder.ExprStmt(builder.Ident("no")),
		),
		builder.While(builder.Ident("cond"), builder.Block(
			builder.ExprStmt(builder.Jsx("span",
				[]ast.JsxAttribute{builder.JsxAttr("title", builder.Ident("label"))},
				builder.Ident("child"),
			)),
		)),
	)

	c := newIdentCollector()
	p.VisitWith(c)
	require.Equal(t, []string{"x", "x", "yes", "no", "cond", "label", "child"}, c.names)
}

// nodeCounter checks that the default traversal reaches every expression of
// a mixed tree.
type nodeCounter struct {
	ast.NoopVisitor
	expressions int
}

func (c *nodeCounter) VisitExpression(n *ast.Expression) {
	c.expressions++
	n.VisitChildrenWith(c.V)
}

func TestNoopVisitorWalksWholeTree(t *testing.T) {
	c := &nodeCounter{}
	c.V = c

	p := sampleProgram()
	p.VisitWith(c)
	require.Greater(t, c.expressions, 20, "the sample tree has well over twenty expression wrappers")
}

func TestVisitSkipsAbsentOptionalChildren(t *testing.T) {
	p := builder.Script(
		builder.BareReturn(),
		builder.Empty(),
		builder.ExprStmt(builder.Function("", nil)),
		builder.ExprStmt(ast.Expression{Expr: &ast.YieldExpression{}}),
	)

	c := newIdentCollector()
	require.NotPanics(t, func() { p.VisitWith(c) })
	require.Empty(t, c.names)
}
