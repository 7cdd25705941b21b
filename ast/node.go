// Package ast defines the syntax tree for the ECMAScript expression grammar,
// including the JSX extension.
//
// The types are designed to be easily understandable and readable, which
// means invalid trees are not ruled out by the type definitions. A
// TaggedTemplateExpression, for example, is only meaningful when its Quasi is
// a TemplateLiteral, but any expression can be stored there. Legality
// checking is a separate pass (see the validator package); keeping the tree
// permissive keeps it constructible during error-recovery parsing.
//
// Nodes are inert data. They are built once, bottom-up, by a producer (a
// parser, or the builder package) and never mutated in place; a
// transformation pass produces new nodes via Clone. A finished tree is safe
// to share across concurrent readers.
package ast

import "strconv"

// Node is implemented by every syntax tree node.
type Node interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Program is the root of the syntax tree.
type Program struct {
	SourceType SourceType
	Body       Statements
}

// SourceType reports how a Program's source text was produced. A module is
// implicitly strict and may contain import and export declarations. The
// distinction changes downstream legality and evaluation rules only; it never
// changes the tree shape.
type SourceType int

const (
	SourceTypeScript SourceType = iota
	SourceTypeModule
)

func (t SourceType) String() string {
	switch t {
	case SourceTypeScript:
		return "script"
	case SourceTypeModule:
		return "module"
	}
	return "SourceType(" + strconv.Itoa(int(t)) + ")"
}
