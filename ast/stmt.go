package ast

type (
	Statements []Statement

	// Statement is a struct to allow defining methods on it.
	Statement struct {
		Stmt
	}

	// All statement nodes implement the Stmt interface.
	//
	// The statement grammar is an extension point. The expression grammar in
	// this package is complete, while the statement set below covers only
	// enough forms to populate Program.Body and function bodies; further
	// statement and declaration forms (for, switch, try, class, import,
	// export, ...) are expected to be added here over time.
	Stmt interface {
		Node
		_stmt()
	}

	// ExpressionStatement instructs an evaluator to evaluate an expression
	// and discard the result. An arrow function with an expression body is
	// a function whose body is a single ExpressionStatement.
	ExpressionStatement struct {
		Expression *Expression
	}

	BlockStatement struct {
		List Statements
	}

	EmptyStatement struct{}

	ReturnStatement struct {
		// Argument is nil for a bare `return`.
		Argument *Expression
	}

	// IfStatement uses the conventional branch names: Consequent runs when
	// Test is truthy. Only ConditionalExpression carries the swapped naming.
	IfStatement struct {
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement // nil when there is no else branch
	}

	WhileStatement struct {
		Test *Expression
		Body *Statement
	}

	// VariableDeclaration declares one or more bindings with a shared kind.
	VariableDeclaration struct {
		Kind VariableKind
		List VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target Identifier
		// Initializer is nil when the binding is only declared.
		Initializer *Expression
	}

	FunctionDeclaration struct {
		Function *FunctionLiteral
	}
)

// VariableKind distinguishes `var`, `let` and `const` declarations.
type VariableKind string

const (
	VariableKindVar   VariableKind = "var"
	VariableKindLet   VariableKind = "let"
	VariableKindConst VariableKind = "const"
)

func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ReturnStatement) _stmt()     {}
func (*IfStatement) _stmt()         {}
func (*WhileStatement) _stmt()      {}
func (*VariableDeclaration) _stmt() {}
func (*FunctionDeclaration) _stmt() {}
