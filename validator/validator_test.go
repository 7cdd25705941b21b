package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escript/escript/ast"
	"github.com/escript/escript/builder"
	"github.com/escript/escript/validator"
)

func messages(ds []validator.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	return out
}

func TestLegalProgramHasNoDiagnostics(t *testing.T) {
	p := builder.Script(
		builder.Const("answer", builder.Number(42)),
		builder.ExprStmt(builder.Call(
			builder.Member(builder.Ident("console"), "log"),
			builder.Tagged(builder.Ident("tag"), builder.Tpl("a", builder.Ident("b"))),
		)),
		builder.ExprStmt(builder.Assign(ast.Assign, builder.Ident("x"), builder.Ident("y"))),
		builder.FuncDecl("gen", nil,
			builder.ExprStmt(builder.Generator("", nil,
				builder.ExprStmt(builder.Yield(builder.Number(1))),
				builder.ExprStmt(builder.BareYield()),
			)),
		),
	)
	assert.Empty(t, validator.Validate(p))
}

func TestYieldOutsideGenerator(t *testing.T) {
	p := builder.Script(
		builder.ExprStmt(builder.Yield(builder.Number(1))),
	)
	ds := validator.Validate(p)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "yield")
}

func TestYieldInPlainFunctionInsideGenerator(t *testing.T) {
	// The generator flag does not leak into a nested non-generator body.
	p := builder.Script(
		builder.ExprStmt(builder.Generator("g", nil,
			builder.ExprStmt(builder.Function("inner", nil,
				builder.ExprStmt(builder.Yield(builder.Number(1))),
			)),
		)),
	)
	ds := validator.Validate(p)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "generator")
}

func TestYieldDelegateNeedsArgument(t *testing.T) {
	p := builder.Script(
		builder.ExprStmt(builder.Generator("g", nil,
			builder.ExprStmt(ast.Expression{Expr: &ast.YieldExpression{Delegate: true}}),
		)),
	)
	ds := validator.Validate(p)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "delegate")
}

func TestTaggedTemplateQuasiMustBeTemplate(t *testing.T) {
	bad := builder.Tagged(builder.Ident("tag"), builder.Str("not a template"))
	ds := validator.ValidateExpr(&bad)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "template literal")

	good := builder.Tagged(builder.Ident("tag"), builder.Tpl("ok"))
	assert.Empty(t, validator.ValidateExpr(&good))
}

func TestAssignTargets(t *testing.T) {
	okIdent := builder.Assign(ast.AddAssign, builder.Ident("a"), builder.Number(1))
	assert.Empty(t, validator.ValidateExpr(&okIdent))

	okMember := builder.Assign(ast.Assign, builder.Member(builder.Ident("o"), "k"), builder.Number(1))
	assert.Empty(t, validator.ValidateExpr(&okMember))

	bad := builder.Assign(ast.Assign, builder.Number(3), builder.Number(1))
	ds := validator.ValidateExpr(&bad)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "not assignable")
}

func TestUpdateTargets(t *testing.T) {
	ok := builder.PostInc(builder.Index(builder.Ident("xs"), builder.Number(0)))
	assert.Empty(t, validator.ValidateExpr(&ok))

	bad := builder.PreDec(builder.Call(builder.Ident("f")))
	ds := validator.ValidateExpr(&bad)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "--")
}

func TestNaNLiteralIsReported(t *testing.T) {
	bad := builder.Number(math.NaN())
	ds := validator.ValidateExpr(&bad)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "NaN")
}

func TestIdentifierLegality(t *testing.T) {
	for _, name := range []string{"x", "$", "_", "$dollar", "_private", "caf\u00e9", "a1"} {
		e := ast.Expression{Expr: &ast.Identifier{Name: name}}
		assert.Empty(t, validator.ValidateExpr(&e), "%q should be legal", name)
	}
	for _, name := range []string{"", "1abc", "a-b", "a b", "#tag"} {
		e := ast.Expression{Expr: &ast.Identifier{Name: name}}
		ds := validator.ValidateExpr(&e)
		require.Len(t, ds, 1, "%q should be illegal", name)
		assert.Contains(t, ds[0].Message, "legal")
	}
}

func TestIdentifierMustBeNFC(t *testing.T) {
	// A decomposed name is lexically fine but fails the normalization rule.
	e := ast.Expression{Expr: &ast.Identifier{Name: "e\u0301"}}
	ds := validator.ValidateExpr(&e)
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "NFC")
}

func TestJsxNames(t *testing.T) {
	bad := builder.Jsx("",
		[]ast.JsxAttribute{builder.JsxFlag("")},
	)
	ds := validator.ValidateExpr(&bad)
	require.Len(t, ds, 2)
	assert.Contains(t, messages(ds)[0], "element")
	assert.Contains(t, messages(ds)[1], "attribute")

	good := builder.Jsx("div",
		[]ast.JsxAttribute{builder.JsxAttr("id", builder.Str("root"))},
		builder.JsxFrag(builder.Str("hi")),
	)
	assert.Empty(t, validator.ValidateExpr(&good))
}

func TestDiagnosticsComeInTraversalOrder(t *testing.T) {
	p := builder.Script(
		builder.ExprStmt(builder.Assign(ast.Assign, builder.Number(1), builder.Ident("a"))),
		builder.ExprStmt(builder.Yield(builder.Ident("b"))),
	)
	ds := validator.Validate(p)
	require.Len(t, ds, 2)
	assert.Contains(t, ds[0].Message, "assignment")
	assert.Contains(t, ds[1].Message, "yield")
}
