package ast

import "strconv"

// The four operator sets are closed: consumers switch on operator identity
// without string comparison, and new operators are never added outside these
// sets. Each tag only names the operation — coercion rules, bit widths and
// sign behavior are the contract of a downstream evaluator.

// UpdateOperator is an operator that updates the mathematical value of its
// single operand and returns it. In postfix position the old value is
// returned instead.
type UpdateOperator int

const (
	Increment UpdateOperator = iota // ++
	Decrement                       // --
)

// UnaryOperator is an operator applied in prefix position to one operand.
type UnaryOperator int

const (
	UnaryMinus UnaryOperator = iota // -
	UnaryPlus                       // +
	Not                             // !
	BitwiseNot                      // ~
	Typeof                          // typeof x is the name of x's internal type
	Void                            // evaluates the operand, returns undefined
	Delete                          // removes a property from an object
)

// BinaryOperator is an infix operator over two operands that produces a new
// value without changing either operand.
type BinaryOperator int

const (
	LooseEqual     BinaryOperator = iota // ==, with type coercion
	LooseNotEqual                        // !=
	StrictEqual                          // ===, types first, values second
	StrictNotEqual                       // !==
	Less                                 // <
	LessOrEqual                          // <=
	Greater                              // >
	GreaterOrEqual                       // >=

	ShiftLeft          // <<
	ShiftRight         // >>, sign-preserving
	UnsignedShiftRight // >>>

	Plus      // +
	Minus     // -
	Multiply  // *
	Divide    // /
	Remainder // %

	Or          // |
	ExclusiveOr // ^
	And         // &

	LogicalOr  // ||
	LogicalAnd // &&

	In         // key existence in an object
	InstanceOf // prototype chain membership
	Exponent   // **
)

// AssignmentOperator changes the left hand side of an expression, either
// plainly or by combining it with the right hand side first.
type AssignmentOperator int

const (
	Assign                   AssignmentOperator = iota // =
	AddAssign                                          // +=
	SubtractAssign                                     // -=
	MultiplyAssign                                     // *=
	QuotientAssign                                     // /=
	RemainderAssign                                    // %=
	ShiftLeftAssign                                    // <<=
	ShiftRightAssign                                   // >>=
	UnsignedShiftRightAssign                           // >>>=
	OrAssign                                           // |=
	ExclusiveOrAssign                                  // ^=
	AndAssign                                          // &=
)

var updateOperator2string = [...]string{
	Increment: "++",
	Decrement: "--",
}

var unaryOperator2string = [...]string{
	UnaryMinus: "-",
	UnaryPlus:  "+",
	Not:        "!",
	BitwiseNot: "~",
	Typeof:     "typeof",
	Void:       "void",
	Delete:     "delete",
}

var binaryOperator2string = [...]string{
	LooseEqual:         "==",
	LooseNotEqual:      "!=",
	StrictEqual:        "===",
	StrictNotEqual:     "!==",
	Less:               "<",
	LessOrEqual:        "<=",
	Greater:            ">",
	GreaterOrEqual:     ">=",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Divide:             "/",
	Remainder:          "%",
	Or:                 "|",
	ExclusiveOr:        "^",
	And:                "&",
	LogicalOr:          "||",
	LogicalAnd:         "&&",
	In:                 "in",
	InstanceOf:         "instanceof",
	Exponent:           "**",
}

var assignmentOperator2string = [...]string{
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	AndAssign:                "&=",
}

// String returns the source spelling of the operator.
func (op UpdateOperator) String() string {
	if op >= 0 && int(op) < len(updateOperator2string) {
		return updateOperator2string[op]
	}
	return "UpdateOperator(" + strconv.Itoa(int(op)) + ")"
}

// String returns the source spelling of the operator.
func (op UnaryOperator) String() string {
	if op >= 0 && int(op) < len(unaryOperator2string) {
		return unaryOperator2string[op]
	}
	return "UnaryOperator(" + strconv.Itoa(int(op)) + ")"
}

// String returns the source spelling of the operator.
func (op BinaryOperator) String() string {
	if op >= 0 && int(op) < len(binaryOperator2string) {
		return binaryOperator2string[op]
	}
	return "BinaryOperator(" + strconv.Itoa(int(op)) + ")"
}

// String returns the source spelling of the operator.
func (op AssignmentOperator) String() string {
	if op >= 0 && int(op) < len(assignmentOperator2string) {
		return assignmentOperator2string[op]
	}
	return "AssignmentOperator(" + strconv.Itoa(int(op)) + ")"
}
