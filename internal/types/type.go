// Package types implements a type algebra for a Java-like nominal type
// system: same-type, subtype, supertype enumeration, projection,
// overriding and SAM function-type resolution over generics, wildcards,
// intersections, arrays and primitives.
package types

// Type is the interface implemented by every type term.
//
// Operations over Type are implemented as top-level functions that
// switch on the concrete variant, rather than as a visitor interface
// with one method per operation: a type switch gives the same dispatch
// with one compile-time-checkable table per operation instead of one
// method set spread across every variant.
type Type interface {
	// String returns a human-readable representation of the term.
	String() string

	// aType restricts implementations of Type to this package.
	aType()
}

// typ is embedded by every Type implementation to satisfy aType.
type typ struct{}

func (typ) aType() {}

// Erasure returns the erasure of t: type arguments stripped, type
// variables replaced by their leftmost bound.
func Erasure(t Type) Type {
	switch t := t.(type) {
	case *ClassType:
		return t.symbol.ts.declarationType(t.symbol)
	case *ArrayType:
		return &ArrayType{elem: Erasure(t.elem)}
	case *TypeVar:
		return Erasure(leftmostBound(t.upper))
	case *Intersection:
		return Erasure(t.components()[0])
	case *Wildcard:
		return Erasure(t.upperBound())
	default:
		return t
	}
}

// leftmostBound unwraps an intersection to its first component, or
// returns t unchanged if it is not an intersection.
func leftmostBound(t Type) Type {
	if it, ok := t.(*Intersection); ok {
		return it.components()[0]
	}
	return t
}

// IsRaw reports whether t is a parameterised class viewed with no type
// arguments, despite its symbol declaring formal type parameters.
func IsRaw(t Type) bool {
	ct, ok := t.(*ClassType)
	return ok && len(ct.symbol.FormalTypeParams) > 0 && len(ct.typeArgs) == 0
}

// IsParameterized reports whether t is a class type with a non-empty
// type argument list.
func IsParameterized(t Type) bool {
	ct, ok := t.(*ClassType)
	return ok && len(ct.typeArgs) > 0
}

// IsPrimitive reports whether t is one of the primitive numeric/boolean
// kinds (not a reference type, not void).
func IsPrimitive(t Type) bool {
	_, ok := t.(*Primitive)
	return ok
}
