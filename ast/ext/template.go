package ext

import "github.com/escript/escript/ast"

// SplitTemplate projects a template literal's interleaved element sequence
// into the shape a tag function is invoked with: the literal spans (quasis)
// in order, and the interpolated expressions in order. The tree itself never
// pre-splits, so every consumer that needs this shape goes through here.
func SplitTemplate(n *ast.TemplateLiteral) ([]ast.TemplateElement, ast.Expressions) {
	var quasis []ast.TemplateElement
	var exprs ast.Expressions
	for i := range n.Elements {
		switch c := n.Elements[i].Chunk.(type) {
		case *ast.TemplateElement:
			quasis = append(quasis, *c)
		case *ast.Expression:
			exprs = append(exprs, *c)
		}
	}
	return quasis, exprs
}

// MergeTemplate rebuilds a template literal from split quasis and
// expressions, interleaving quasi-first. For any template that came out of
// source text (spans and interpolations alternating, span first) this
// reproduces the exact SplitTemplate input. Sequences that never alternated
// cannot be reconstructed; the split is lossy for them.
func MergeTemplate(quasis []ast.TemplateElement, exprs ast.Expressions) *ast.TemplateLiteral {
	elements := make(ast.TemplateLiteralElements, 0, len(quasis)+len(exprs))
	for i := 0; i < len(quasis) || i < len(exprs); i++ {
		if i < len(quasis) {
			q := quasis[i]
			elements = append(elements, ast.TemplateLiteralElement{Chunk: &q})
		}
		if i < len(exprs) {
			e := exprs[i]
			elements = append(elements, ast.TemplateLiteralElement{Chunk: &e})
		}
	}
	return &ast.TemplateLiteral{Elements: elements}
}
