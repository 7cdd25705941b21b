// Package validator checks a syntax tree against the grammar rules the tree
// deliberately does not enforce. The node types stay permissive so that
// error-recovery parsing can represent anything; this pass is where
// representable-but-illegal trees are reported.
package validator

import (
	"math"
	"strconv"

	"github.com/nukilabs/unicodeid"
	"golang.org/x/text/unicode/norm"

	"github.com/escript/escript/ast"
	"github.com/escript/escript/ast/ext"
)

// Diagnostic is one legality finding. The pass never mutates the tree and
// never stops early; callers get every finding in traversal order.
type Diagnostic struct {
	Node    ast.Node
	Message string
}

// Validate walks a whole program and reports every representable-but-illegal
// construct it contains.
func Validate(p *ast.Program) []Diagnostic {
	v := &validator{}
	v.V = v
	p.VisitWith(v)
	return v.diagnostics
}

// ValidateExpr checks a single expression tree outside any program context.
// The expression is treated as sitting outside a generator body, so any
// yield in it is reported.
func ValidateExpr(e *ast.Expression) []Diagnostic {
	v := &validator{}
	v.V = v
	e.VisitWith(v)
	return v.diagnostics
}

type validator struct {
	ast.NoopVisitor

	diagnostics []Diagnostic

	// generator tracks whether the innermost enclosing function is a
	// generator; the stack bottoms out at top level.
	generator []bool
}

func (v *validator) report(n ast.Node, msg string) {
	v.diagnostics = append(v.diagnostics, Diagnostic{Node: n, Message: msg})
}

func (v *validator) inGenerator() bool {
	return len(v.generator) > 0 && v.generator[len(v.generator)-1]
}

func (v *validator) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	v.generator = append(v.generator, n.Generator)
	n.VisitChildrenWith(v.V)
	v.generator = v.generator[:len(v.generator)-1]
}

func (v *validator) VisitYieldExpression(n *ast.YieldExpression) {
	if !v.inGenerator() {
		v.report(n, "yield is only legal inside a generator function body")
	}
	if n.Delegate && n.Argument == nil {
		v.report(n, "yield * requires an argument to delegate to")
	}
	n.VisitChildrenWith(v.V)
}

func (v *validator) VisitTaggedTemplateExpression(n *ast.TaggedTemplateExpression) {
	if _, ok := n.Quasi.Expr.(*ast.TemplateLiteral); !ok {
		v.report(n, "tagged template quasi must be a template literal")
	}
	n.VisitChildrenWith(v.V)
}

func (v *validator) VisitAssignExpression(n *ast.AssignExpression) {
	if !ext.IsAssignTarget(n.Left) {
		v.report(n, "left hand side of assignment is not assignable")
	}
	n.VisitChildrenWith(v.V)
}

func (v *validator) VisitUpdateExpression(n *ast.UpdateExpression) {
	if !ext.IsAssignTarget(n.Operand) {
		v.report(n, "operand of "+n.Operator.String()+" is not assignable")
	}
	n.VisitChildrenWith(v.V)
}

func (v *validator) VisitNumberLiteral(n *ast.NumberLiteral) {
	// The tree's contract is that NaN never appears as a literal; producers
	// use the NaN identifier instead.
	if math.IsNaN(n.Value) {
		v.report(n, "NaN stored in a number literal")
	}
}

func (v *validator) VisitIdentifier(n *ast.Identifier) {
	if !legalIdentifier(n.Name) {
		v.report(n, "identifier "+strconv.Quote(n.Name)+" is not a lexically legal name")
	} else if n.Name != norm.NFC.String(n.Name) {
		v.report(n, "identifier "+strconv.Quote(n.Name)+" is not NFC-normalized")
	}
}

func (v *validator) VisitJsxElement(n *ast.JsxElement) {
	if n.Name == "" {
		v.report(n, "JSX element has an empty name")
	}
	n.VisitChildrenWith(v.V)
}

func (v *validator) VisitJsxNamedAttribute(n *ast.JsxNamedAttribute) {
	if n.Name == "" {
		v.report(n, "JSX attribute has an empty name")
	}
	n.VisitChildrenWith(v.V)
}

// legalIdentifier reports whether name is a lexically legal identifier:
// an ID_Start character (or $ or _) followed by ID_Continue characters.
// Reserved words are a parse-context concern and are not rejected here.
func legalIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		if i == 0 {
			if c != '$' && c != '_' && !unicodeid.IsIDStart(c) {
				return false
			}
			continue
		}
		if c != '$' && !unicodeid.IsIDContinue(c) {
			return false
		}
	}
	return true
}
