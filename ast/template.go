package ast

type (
	// TemplateLiteral is a template literal with its text spans and
	// interpolated expressions interleaved in source order.
	//
	// When a template literal is passed to a tag function it is usually
	// split into the quasis as the first argument with the expressions
	// spread behind them. That projection is left to the consumer (see
	// ext.SplitTemplate); the tree keeps the one interleaved sequence.
	TemplateLiteral struct {
		Elements TemplateLiteralElements
	}

	TemplateLiteralElements []TemplateLiteralElement

	// TemplateLiteralElement is one piece of a template literal: either the
	// text between backticks and `${`, or the expression between `${` and
	// `}`. Keeping them in one ordered sequence is easier than trying to
	// re-construct the order. There is no invariant that spans and
	// expressions alternate strictly.
	TemplateLiteralElement struct {
		Chunk TemplateChunk
	}

	// TemplateChunk is implemented by the two element forms, TemplateElement
	// and Expression.
	TemplateChunk interface {
		Node
		_templateChunk()
	}

	// TemplateElement is a literal text span inside a template literal.
	TemplateElement struct {
		// Raw is the exact source text of the span.
		Raw string
		// Cooked is the span with escape sequences resolved.
		// eg. if Raw is `A`, Cooked is "A".
		Cooked string
	}
)

func (*TemplateElement) _templateChunk() {}
func (*Expression) _templateChunk()      {}
