package ast

// PropertyKind tells a consumer whether an object property is a getter, a
// setter, or a basic initializer.
type PropertyKind string

const (
	// PropertyKindInit means the value is simply initialized to the
	// expression. This is the default.
	PropertyKindInit PropertyKind = "init"
	// PropertyKindGet means the value is a function invoked on property
	// access.
	PropertyKindGet PropertyKind = "get"
	// PropertyKindSet means the value is a function invoked on property
	// assignment.
	PropertyKindSet PropertyKind = "set"
)

type (
	Properties []Property

	// Property is one entry of an object literal. The key can be a computed
	// expression or an identifier reference. Duplicate keys, including a
	// getter and setter for the same key, are representable at this layer.
	Property struct {
		Key   *Expression
		Value *Expression
		Kind  PropertyKind
	}
)
