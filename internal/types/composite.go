package types

import "strings"

// ArrayType represents an array type T[].
type ArrayType struct {
	typ
	elem Type
}

// NewArray creates a new array type with the given component type.
func NewArray(elem Type) *ArrayType {
	return &ArrayType{elem: elem}
}

// Elem returns the array's component type.
func (a *ArrayType) Elem() Type { return a.elem }

// String implements Type.
func (a *ArrayType) String() string { return a.elem.String() + "[]" }

// Wildcard is a type argument of the form "? extends U" (upper-bounded)
// or "? super L" (lower-bounded). The unbounded wildcard "?" is
// represented as an upper-bounded wildcard whose bound is Object.
//
// Invariant: of the two effective bounds (upperBound and lowerBound
// below), the one opposite the wildcard's polarity is the "trivial" one
// (Object for the upper bound, the null type for the lower bound).
type Wildcard struct {
	typ
	upper bool // true: "? extends bound"; false: "? super bound"
	bound Type
}

// NewUpperWildcard creates "? extends bound".
func NewUpperWildcard(bound Type) *Wildcard {
	return &Wildcard{upper: true, bound: bound}
}

// NewLowerWildcard creates "? super bound".
func NewLowerWildcard(bound Type) *Wildcard {
	return &Wildcard{upper: false, bound: bound}
}

// IsUpperBound reports whether this is a "? extends" wildcard.
func (w *Wildcard) IsUpperBound() bool { return w.upper }

// IsLowerBound reports whether this is a "? super" wildcard.
func (w *Wildcard) IsLowerBound() bool { return !w.upper }

// Bound returns the wildcard's bound (the U in "? extends U", or the L
// in "? super L").
func (w *Wildcard) Bound() Type { return w.bound }

// upperBound returns the effective upper bound: the bound itself if
// this is upper-bounded, else Object.
func (w *Wildcard) upperBound() Type {
	if w.upper {
		return w.bound
	}
	return objectSentinel
}

// lowerBound returns the effective lower bound: the bound itself if
// this is lower-bounded, else the null type.
func (w *Wildcard) lowerBound() Type {
	if !w.upper {
		return w.bound
	}
	return nullTypeSingleton
}

// isUnbounded reports whether this is the trivial "?" wildcard.
func (w *Wildcard) isUnbounded() bool {
	return w.upper && Identical(w.bound, objectSentinel, false)
}

// String implements Type.
func (w *Wildcard) String() string {
	if w.isUnbounded() {
		return "?"
	}
	if w.upper {
		return "? extends " + w.bound.String()
	}
	return "? super " + w.bound.String()
}

// Intersection is a type S & I1 & ... & Ik: at most one non-interface
// component (the superclass), k >= 1 interface components, pairwise
// incomparable.
type Intersection struct {
	typ
	superclass Type // nil if there is none
	interfaces []Type
}

// NewIntersection builds an intersection type from an optional
// superclass component and one or more interface components. Order of
// interfaces is preserved for display but is semantically irrelevant.
func NewIntersection(superclass Type, interfaces []Type) *Intersection {
	if len(interfaces) == 0 {
		panic(newDomainError("intersection type must have at least one interface component"))
	}
	return &Intersection{superclass: superclass, interfaces: interfaces}
}

// Superclass returns the intersection's class component, or nil.
func (i *Intersection) Superclass() Type { return i.superclass }

// Interfaces returns the intersection's interface components.
func (i *Intersection) Interfaces() []Type { return i.interfaces }

// components returns the superclass (if any) followed by the
// interfaces, in a stable order used by operations that need "the
// first component" (e.g. Erasure, asSuper).
func (i *Intersection) components() []Type {
	if i.superclass == nil {
		return i.interfaces
	}
	out := make([]Type, 0, len(i.interfaces)+1)
	out = append(out, i.superclass)
	out = append(out, i.interfaces...)
	return out
}

// String implements Type.
func (i *Intersection) String() string {
	var parts []string
	if i.superclass != nil {
		parts = append(parts, i.superclass.String())
	}
	for _, it := range i.interfaces {
		parts = append(parts, it.String())
	}
	return strings.Join(parts, " & ")
}
