package ast

import "reflect"

// Matching lets a consumer destructure a tree against a pattern tree that
// reads like the source it came from: build the pattern with the builder
// package, drop Any() where any subtree is acceptable, and Capture(&out)
// where a subtree should be extracted.

// Any is a pattern sentinel that matches any node in its slot.
type Any struct{}

func AnyNode() *Any { return &Any{} }

// Capture is a pattern sentinel that matches any node in its slot and stores
// it through Out, which must be a non-nil pointer whose element type the
// matched node is assignable to (for example *Expr or **Identifier).
type Capture struct {
	Out any
}

func CaptureNode(out any) *Capture {
	return &Capture{Out: out}
}

// Match reports whether actual has the shape of pattern, filling any Capture
// sentinels on the way. Without sentinels it is exactly structural equality.
func Match(actual, pattern any) bool {
	return matchValue(reflect.ValueOf(actual), reflect.ValueOf(pattern))
}

// Equal reports structural equality: both trees have the same tags and
// recursively equal payloads. Nil and empty node lists are not distinguished.
func Equal(a, b Node) bool {
	return matchValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func matchValue(a, p reflect.Value) bool {
	for a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	for p.Kind() == reflect.Interface {
		p = p.Elem()
	}

	if p.IsValid() && p.CanInterface() {
		switch s := p.Interface().(type) {
		case *Any:
			if s != nil {
				return true
			}
		case *Capture:
			if s != nil {
				return s.store(a)
			}
		}
	}

	if !a.IsValid() || !p.IsValid() {
		return a.IsValid() == p.IsValid()
	}
	if a.Type() != p.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || p.IsNil() {
			return a.IsNil() == p.IsNil()
		}
		return matchValue(a.Elem(), p.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !matchValue(a.Field(i), p.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != p.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !matchValue(a.Index(i), p.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Interface() == p.Interface()
	}
}

func (c *Capture) store(a reflect.Value) bool {
	if !a.IsValid() {
		return false
	}
	if c.Out == nil {
		return true
	}
	out := reflect.ValueOf(c.Out)
	if out.Kind() != reflect.Pointer || out.IsNil() {
		return false
	}
	if !a.Type().AssignableTo(out.Type().Elem()) {
		return false
	}
	out.Elem().Set(a)
	return true
}

func (*Any) VisitWith(Visitor)         {}
func (*Any) VisitChildrenWith(Visitor) {}
func (*Any) _expr()                    {}
func (*Any) _stmt()                    {}
func (*Any) _templateChunk()           {}
func (*Any) _jsxAttribute()            {}

func (*Capture) VisitWith(Visitor)         {}
func (*Capture) VisitChildrenWith(Visitor) {}
func (*Capture) _expr()                    {}
func (*Capture) _stmt()                    {}
func (*Capture) _templateChunk()           {}
func (*Capture) _jsxAttribute()            {}
