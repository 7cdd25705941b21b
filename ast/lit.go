package ast

type (
	// NullLiteral is the syntax element for `null`.
	NullLiteral struct{}

	// BooleanLiteral is the syntax element for `true` and `false`.
	BooleanLiteral struct {
		Value bool
	}

	// NumberLiteral is a numeric literal reduced to a 64-bit float by the
	// producer. Integers beyond 2^53 lose precision on the way in; that is
	// accepted, not guarded against.
	//
	// Note: NaN should not be stored here, use an identifier instead.
	NumberLiteral struct {
		Value float64
	}

	// StringLiteral is a quoted string literal with its escape sequences
	// already resolved by the producer.
	StringLiteral struct {
		Value string
	}

	// RegExpLiteral is a regular expression literal, eg. `/abc[123]/gi`.
	// The pattern is kept unparsed; flag legality and pattern compilation
	// are downstream concerns.
	RegExpLiteral struct {
		Pattern string
		Flags   string
	}
)

// Lit marks the scalar literal sub-union: null, boolean, number and string.
// RegExpLiteral and TemplateLiteral are deliberately not part of it — they
// carry structure rather than a single scalar, and consumers rely on the
// distinction.
type Lit interface {
	Expr
	_literal()
}

func (*NullLiteral) _expr()    {}
func (*BooleanLiteral) _expr() {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
func (*RegExpLiteral) _expr()  {}

func (*NullLiteral) _literal()    {}
func (*BooleanLiteral) _literal() {}
func (*NumberLiteral) _literal()  {}
func (*StringLiteral) _literal()  {}
