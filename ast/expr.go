package ast

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// ThisExpression is the `this` keyword in expression position.
	ThisExpression struct{}

	// SuperExpression is the `super` keyword, similar to `this`.
	SuperExpression struct{}

	// MetaProperty is the `new.target` expression. It tells the callee
	// whether it was invoked with the `new` operator.
	MetaProperty struct{}

	// Identifier is a name lookup in expression position, or a name in a
	// parameter list or declarator.
	Identifier struct {
		Name string
	}

	// ArrayLiteral is an expression created with [] brackets. The element
	// order is the source order; an empty Value is `[]`.
	ArrayLiteral struct {
		Value Expressions
	}

	// ObjectLiteral is an expression created with {} brackets. Duplicate
	// keys are representable; rejecting them is a validation concern.
	ObjectLiteral struct {
		Value Properties
	}

	// FunctionLiteral is a function in expression position. Arrow functions
	// with an expression body are represented with a single
	// ExpressionStatement in Body.
	FunctionLiteral struct {
		// Name is nil for anonymous functions.
		Name          *Identifier
		ParameterList []Identifier
		Body          Statements

		Async, Generator bool
	}

	// SpreadElement is `...expr` inside an array literal or argument list.
	SpreadElement struct {
		Expression Expression
	}

	// MemberExpression is a property access. With Computed set the Property
	// is an arbitrary key expression (`obj[key]`); without it the Property
	// is an identifier-like key (`obj.key`). The restriction on the
	// non-computed form is not enforced here.
	MemberExpression struct {
		Object   *Expression
		Property *Expression
		Computed bool
	}

	// NewExpression constructs Callee and returns an object.
	NewExpression struct {
		Callee       *Expression
		ArgumentList Expressions
	}

	// CallExpression is a regular function call. Arguments may themselves
	// be SpreadElements.
	CallExpression struct {
		Callee       *Expression
		ArgumentList Expressions
	}

	// TaggedTemplateExpression applies Tag to the elements of a template
	// literal. The only Quasi that can appear in a legal program is a
	// TemplateLiteral; any expression is representable here.
	TaggedTemplateExpression struct {
		Tag   *Expression
		Quasi *Expression
	}

	// UpdateExpression is ++ or -- applied to an operand. Prefix records the
	// operator position explicitly, so `++a` and `a++` are distinct trees.
	UpdateExpression struct {
		Operator UpdateOperator
		Operand  *Expression
		Prefix   bool
	}

	// UnaryExpression is a prefix operator applied to a single operand.
	UnaryExpression struct {
		Operator UnaryOperator
		Operand  *Expression
	}

	// BinaryExpression is `Left Operator Right`.
	BinaryExpression struct {
		Operator BinaryOperator
		Left     *Expression
		Right    *Expression
	}

	// ConditionalExpression is the ternary `test ? x : y`.
	//
	// NOTE: the field naming is intentionally unconventional and must not be
	// "fixed": Alternate is the branch taken when Test is truthy and
	// Consequent is the branch taken when Test is falsy. Evaluators and
	// printers have to honor this exact pairing.
	ConditionalExpression struct {
		Test       *Expression
		Alternate  *Expression
		Consequent *Expression
	}

	// AssignExpression changes Left by combining it with Right under
	// Operator. Left is not restricted to assignable forms here; the
	// validator reports non-assignable targets.
	AssignExpression struct {
		Operator AssignmentOperator
		Left     *Expression
		Right    *Expression
	}

	// YieldExpression is only legal inside a generator function body, which
	// the tree does not check. Delegate marks the `yield *` form.
	YieldExpression struct {
		// Argument is nil when the yield carries no value.
		Argument *Expression
		Delegate bool
	}

	// SequenceExpression is the comma operator: every operand is evaluated
	// and all but the last result is discarded.
	SequenceExpression struct {
		Sequence Expressions
	}
)

func (*ThisExpression) _expr()           {}
func (*SuperExpression) _expr()          {}
func (*MetaProperty) _expr()             {}
func (*Identifier) _expr()               {}
func (*ArrayLiteral) _expr()             {}
func (*ObjectLiteral) _expr()            {}
func (*FunctionLiteral) _expr()          {}
func (*TemplateLiteral) _expr()          {}
func (*SpreadElement) _expr()            {}
func (*MemberExpression) _expr()         {}
func (*NewExpression) _expr()            {}
func (*CallExpression) _expr()           {}
func (*TaggedTemplateExpression) _expr() {}
func (*UpdateExpression) _expr()         {}
func (*UnaryExpression) _expr()          {}
func (*BinaryExpression) _expr()         {}
func (*ConditionalExpression) _expr()    {}
func (*AssignExpression) _expr()         {}
func (*YieldExpression) _expr()          {}
func (*SequenceExpression) _expr()       {}
func (*JsxElement) _expr()               {}
func (*JsxFragment) _expr()              {}
