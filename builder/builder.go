// Package builder is the construction facade over the ast package: one
// function per node form, with argument order close to the source text, so
// that callers assemble trees without naming every variant explicitly.
//
// The facade adds nothing to the tree's contracts. In particular it performs
// no legality checking — it will happily build the same ungrammatical trees
// a parser builds during error recovery. Misuse of the facade itself (a
// template part that is neither a string nor an expression) panics, since
// that is a programming error and not a property of the input program.
package builder

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/escript/escript/ast"
)

func ptr(e ast.Expression) *ast.Expression { return &e }

// Script builds a program root parsed in script mode.
func Script(body ...ast.Statement) *ast.Program {
	return &ast.Program{SourceType: ast.SourceTypeScript, Body: body}
}

// Module builds a program root parsed in module mode.
func Module(body ...ast.Statement) *ast.Program {
	return &ast.Program{SourceType: ast.SourceTypeModule, Body: body}
}

// Ident builds a name reference. The name is normalized to NFC on the way
// in, matching how conforming producers hand identifiers to the tree.
func Ident(name string) ast.Expression {
	return ast.Expression{Expr: &ast.Identifier{Name: norm.NFC.String(name)}}
}

func This() ast.Expression {
	return ast.Expression{Expr: &ast.ThisExpression{}}
}

func Super() ast.Expression {
	return ast.Expression{Expr: &ast.SuperExpression{}}
}

// NewTarget builds the `new.target` meta property.
func NewTarget() ast.Expression {
	return ast.Expression{Expr: &ast.MetaProperty{}}
}

func Null() ast.Expression {
	return ast.Expression{Expr: &ast.NullLiteral{}}
}

func Bool(v bool) ast.Expression {
	return ast.Expression{Expr: &ast.BooleanLiteral{Value: v}}
}

func Number(v float64) ast.Expression {
	return ast.Expression{Expr: &ast.NumberLiteral{Value: v}}
}

// ParseNumber decodes a numeric literal source string with standard float
// parsing: the result is the nearest representable 64-bit float, so integers
// beyond 2^53 lose precision rather than failing.
func ParseNumber(raw string) (ast.Expression, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ast.Expression{}, err
	}
	return Number(v), nil
}

func Str(v string) ast.Expression {
	return ast.Expression{Expr: &ast.StringLiteral{Value: v}}
}

func Regex(pattern, flags string) ast.Expression {
	return ast.Expression{Expr: &ast.RegExpLiteral{Pattern: pattern, Flags: flags}}
}

func Array(elements ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.ArrayLiteral{Value: elements}}
}

func Object(properties ...ast.Property) ast.Expression {
	return ast.Expression{Expr: &ast.ObjectLiteral{Value: properties}}
}

// Prop builds a plain key/value property.
func Prop(key, value ast.Expression) ast.Property {
	return ast.Property{Key: ptr(key), Value: ptr(value), Kind: ast.PropertyKindInit}
}

// Getter builds a `get key() {...}` property; fn should be a function
// expression.
func Getter(key, fn ast.Expression) ast.Property {
	return ast.Property{Key: ptr(key), Value: ptr(fn), Kind: ast.PropertyKindGet}
}

// Setter builds a `set key(v) {...}` property; fn should be a function
// expression.
func Setter(key, fn ast.Expression) ast.Property {
	return ast.Property{Key: ptr(key), Value: ptr(fn), Kind: ast.PropertyKindSet}
}

// Function builds a function expression. name may be empty for an anonymous
// function.
func Function(name string, params []string, body ...ast.Statement) ast.Expression {
	return function(name, params, body, false, false)
}

// AsyncFunction builds an `async function` expression.
func AsyncFunction(name string, params []string, body ...ast.Statement) ast.Expression {
	return function(name, params, body, true, false)
}

// Generator builds a `function*` expression.
func Generator(name string, params []string, body ...ast.Statement) ast.Expression {
	return function(name, params, body, false, true)
}

// Arrow builds an anonymous function whose body is the single expression
// statement evaluating expr, the representation of an arrow function with an
// expression body.
func Arrow(params []string, expr ast.Expression) ast.Expression {
	return function("", params, []ast.Statement{ExprStmt(expr)}, false, false)
}

func function(name string, params []string, body ast.Statements, async, generator bool) ast.Expression {
	fn := &ast.FunctionLiteral{
		Body:      body,
		Async:     async,
		Generator: generator,
	}
	if name != "" {
		fn.Name = &ast.Identifier{Name: norm.NFC.String(name)}
	}
	for _, p := range params {
		fn.ParameterList = append(fn.ParameterList, ast.Identifier{Name: norm.NFC.String(p)})
	}
	return ast.Expression{Expr: fn}
}

// Tpl builds a template literal from parts in source order. A string part
// becomes a literal span whose raw and cooked text coincide; an
// ast.Expression part becomes an interpolation. For spans whose raw text
// contains escape sequences, build the element with Quasi and place it as an
// *ast.TemplateElement part.
func Tpl(parts ...any) ast.Expression {
	elements := make(ast.TemplateLiteralElements, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			elements = append(elements, ast.TemplateLiteralElement{
				Chunk: &ast.TemplateElement{Raw: p, Cooked: p},
			})
		case *ast.TemplateElement:
			elements = append(elements, ast.TemplateLiteralElement{Chunk: p})
		case ast.Expression:
			elements = append(elements, ast.TemplateLiteralElement{Chunk: ptr(p)})
		default:
			panic(fmt.Sprintf("builder: template part %T is neither a string, *ast.TemplateElement nor an ast.Expression", part))
		}
	}
	return ast.Expression{Expr: &ast.TemplateLiteral{Elements: elements}}
}

// Quasi builds a literal template span with distinct raw and cooked text.
func Quasi(raw, cooked string) *ast.TemplateElement {
	return &ast.TemplateElement{Raw: raw, Cooked: cooked}
}

// Tagged applies tag to a template literal. The quasi slot accepts any
// expression, as the tree does.
func Tagged(tag, quasi ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.TaggedTemplateExpression{Tag: ptr(tag), Quasi: ptr(quasi)}}
}

func Spread(e ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.SpreadElement{Expression: e}}
}

// Member builds the `obj.name` access form.
func Member(object ast.Expression, name string) ast.Expression {
	return ast.Expression{Expr: &ast.MemberExpression{
		Object:   ptr(object),
		Property: ptr(Ident(name)),
	}}
}

// Index builds the computed `obj[key]` access form.
func Index(object, key ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.MemberExpression{
		Object:   ptr(object),
		Property: ptr(key),
		Computed: true,
	}}
}

func Call(callee ast.Expression, arguments ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.CallExpression{Callee: ptr(callee), ArgumentList: arguments}}
}

func New(callee ast.Expression, arguments ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.NewExpression{Callee: ptr(callee), ArgumentList: arguments}}
}

func Update(op ast.UpdateOperator, operand ast.Expression, prefix bool) ast.Expression {
	return ast.Expression{Expr: &ast.UpdateExpression{Operator: op, Operand: ptr(operand), Prefix: prefix}}
}

// PreInc builds `++x`.
func PreInc(x ast.Expression) ast.Expression { return Update(ast.Increment, x, true) }

// PostInc builds `x++`.
func PostInc(x ast.Expression) ast.Expression { return Update(ast.Increment, x, false) }

// PreDec builds `--x`.
func PreDec(x ast.Expression) ast.Expression { return Update(ast.Decrement, x, true) }

// PostDec builds `x--`.
func PostDec(x ast.Expression) ast.Expression { return Update(ast.Decrement, x, false) }

func Unary(op ast.UnaryOperator, operand ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.UnaryExpression{Operator: op, Operand: ptr(operand)}}
}

func Binary(op ast.BinaryOperator, left, right ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.BinaryExpression{Operator: op, Left: ptr(left), Right: ptr(right)}}
}

// Cond builds the ternary `test ? whenTruthy : whenFalsy`. The truthy branch
// is stored in Alternate and the falsy branch in Consequent — that pairing
// is the tree's documented (and unconventional) contract.
func Cond(test, whenTruthy, whenFalsy ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.ConditionalExpression{
		Test:       ptr(test),
		Alternate:  ptr(whenTruthy),
		Consequent: ptr(whenFalsy),
	}}
}

func Assign(op ast.AssignmentOperator, left, right ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.AssignExpression{Operator: op, Left: ptr(left), Right: ptr(right)}}
}

// Yield builds `yield argument`.
func Yield(argument ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.YieldExpression{Argument: ptr(argument)}}
}

// YieldDelegate builds `yield * argument`.
func YieldDelegate(argument ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.YieldExpression{Argument: ptr(argument), Delegate: true}}
}

// BareYield builds `yield` with no argument.
func BareYield() ast.Expression {
	return ast.Expression{Expr: &ast.YieldExpression{}}
}

// Seq builds the comma expression `(a, b, ...)`.
func Seq(exprs ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.SequenceExpression{Sequence: exprs}}
}

// Jsx builds a JSX element. attrs may be nil.
func Jsx(name string, attrs []ast.JsxAttribute, children ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.JsxElement{Name: name, Attributes: attrs, Children: children}}
}

// JsxFrag builds the anonymous `<>...</>` element.
func JsxFrag(children ...ast.Expression) ast.Expression {
	return ast.Expression{Expr: &ast.JsxFragment{Children: children}}
}

// JsxAttr builds a `key={value}` attribute.
func JsxAttr(name string, value ast.Expression) ast.JsxAttribute {
	return ast.JsxAttribute{Attr: &ast.JsxNamedAttribute{Name: name, Value: ptr(value)}}
}

// JsxFlag builds a bare `key` attribute, which reads as true.
func JsxFlag(name string) ast.JsxAttribute {
	return ast.JsxAttribute{Attr: &ast.JsxNamedAttribute{Name: name}}
}

// JsxSpread builds a `{...expr}` attribute.
func JsxSpread(e ast.Expression) ast.JsxAttribute {
	return ast.JsxAttribute{Attr: &ast.JsxSpreadAttribute{Expression: e}}
}

// ExprStmt wraps an expression as a statement evaluating it.
func ExprStmt(e ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: ptr(e)}}
}

func Block(list ...ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.BlockStatement{List: list}}
}

func Empty() ast.Statement {
	return ast.Statement{Stmt: &ast.EmptyStatement{}}
}

func Return(argument ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ReturnStatement{Argument: ptr(argument)}}
}

func BareReturn() ast.Statement {
	return ast.Statement{Stmt: &ast.ReturnStatement{}}
}

func If(test ast.Expression, consequent ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.IfStatement{Test: ptr(test), Consequent: &consequent}}
}

func IfElse(test ast.Expression, consequent, alternate ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.IfStatement{
		Test:       ptr(test),
		Consequent: &consequent,
		Alternate:  &alternate,
	}}
}

func While(test ast.Expression, body ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.WhileStatement{Test: ptr(test), Body: &body}}
}

// Declare builds a declaration statement with an explicit kind and
// declarator list.
func Declare(kind ast.VariableKind, list ...ast.VariableDeclarator) ast.Statement {
	return ast.Statement{Stmt: &ast.VariableDeclaration{Kind: kind, List: list}}
}

// Declarator builds one `name = init` binding.
func Declarator(name string, init ast.Expression) ast.VariableDeclarator {
	return ast.VariableDeclarator{
		Target:      ast.Identifier{Name: norm.NFC.String(name)},
		Initializer: ptr(init),
	}
}

// Var builds `var name = init`.
func Var(name string, init ast.Expression) ast.Statement {
	return Declare(ast.VariableKindVar, Declarator(name, init))
}

// Let builds `let name = init`.
func Let(name string, init ast.Expression) ast.Statement {
	return Declare(ast.VariableKindLet, Declarator(name, init))
}

// Const builds `const name = init`.
func Const(name string, init ast.Expression) ast.Statement {
	return Declare(ast.VariableKindConst, Declarator(name, init))
}

// FuncDecl builds a function declaration statement.
func FuncDecl(name string, params []string, body ...ast.Statement) ast.Statement {
	fn := function(name, params, body, false, false)
	return ast.Statement{Stmt: &ast.FunctionDeclaration{
		Function: fn.Expr.(*ast.FunctionLiteral),
	}}
}
