package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/escript/escript/ast"
)

func TestOperatorSpellings(t *testing.T) {
	assert.Equal(t, "++", ast.Increment.String())
	assert.Equal(t, "--", ast.Decrement.String())

	assert.Equal(t, "-", ast.UnaryMinus.String())
	assert.Equal(t, "+", ast.UnaryPlus.String())
	assert.Equal(t, "!", ast.Not.String())
	assert.Equal(t, "~", ast.BitwiseNot.String())
	assert.Equal(t, "typeof", ast.Typeof.String())
	assert.Equal(t, "void", ast.Void.String())
	assert.Equal(t, "delete", ast.Delete.String())

	assert.Equal(t, "==", ast.LooseEqual.String())
	assert.Equal(t, "!=", ast.LooseNotEqual.String())
	assert.Equal(t, "===", ast.StrictEqual.String())
	assert.Equal(t, "!==", ast.StrictNotEqual.String())
	assert.Equal(t, "<<", ast.ShiftLeft.String())
	assert.Equal(t, ">>", ast.ShiftRight.String())
	assert.Equal(t, ">>>", ast.UnsignedShiftRight.String())
	assert.Equal(t, "**", ast.Exponent.String())
	assert.Equal(t, "&&", ast.LogicalAnd.String())
	assert.Equal(t, "||", ast.LogicalOr.String())
	assert.Equal(t, "in", ast.In.String())
	assert.Equal(t, "instanceof", ast.InstanceOf.String())

	assert.Equal(t, "=", ast.Assign.String())
	assert.Equal(t, "+=", ast.AddAssign.String())
	assert.Equal(t, ">>>=", ast.UnsignedShiftRightAssign.String())
	assert.Equal(t, "&=", ast.AndAssign.String())
}

func TestOperatorOutOfRange(t *testing.T) {
	assert.Equal(t, "UpdateOperator(99)", ast.UpdateOperator(99).String())
	assert.Equal(t, "UnaryOperator(99)", ast.UnaryOperator(99).String())
	assert.Equal(t, "BinaryOperator(99)", ast.BinaryOperator(99).String())
	assert.Equal(t, "AssignmentOperator(99)", ast.AssignmentOperator(99).String())
}
