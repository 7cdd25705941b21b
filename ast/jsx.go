package ast

// JSX is a non-standard markup extension to the expression grammar.
// Structurally a JSX element is just another expression tree shape; the
// requirement that an open tag is matched by a close tag is a parser-time
// concern and is invisible here.

type (
	// JsxElement is an inlined element of the form `<name key={value}>...`.
	JsxElement struct {
		Name       string
		Attributes JsxAttributes
		Children   Expressions
	}

	// JsxFragment is an anonymous JsxElement, `<>...</>`, used to return a
	// list of children without wrapping them in an element.
	JsxFragment struct {
		Children Expressions
	}

	JsxAttributes []JsxAttribute

	// JsxAttribute is one attribute of a JsxElement: either a single named
	// attribute or a spread of an expression's properties.
	JsxAttribute struct {
		Attr JsxAttr
	}

	JsxAttr interface {
		Node
		_jsxAttribute()
	}

	// JsxNamedAttribute is a single `key={value}` pair.
	JsxNamedAttribute struct {
		Name string
		// Value is nil for the bare `key` form, which reads as true.
		Value *Expression
	}

	// JsxSpreadAttribute spreads an expression's key/value pairs into the
	// element, `{...expr}`.
	JsxSpreadAttribute struct {
		Expression Expression
	}
)

func (*JsxNamedAttribute) _jsxAttribute()  {}
func (*JsxSpreadAttribute) _jsxAttribute() {}
