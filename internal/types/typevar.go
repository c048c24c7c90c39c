package types

// TypeVar is either a declared type parameter (with an upper bound,
// possibly an intersection) or a capture variable (with both an upper
// and a lower bound, derived from a wildcard it captured). Identity is
// by reference: two TypeVar values are the same variable iff they are
// the same pointer. Capture variables are created fresh every time a
// wildcard-containing type is captured (subtype.go's capture).
type TypeVar struct {
	typ
	name  string // declaration name, "" for a capture variable
	upper Type
	lower Type // only meaningful when isCapture

	isCapture bool
}

// NewTypeParam creates a declared type parameter with the given bound
// (Object if unbounded, or an *Intersection for multiple bounds).
func NewTypeParam(name string, upperBound Type) *TypeVar {
	return &TypeVar{name: name, upper: upperBound}
}

// Name returns the declared type parameter's name ("" for a capture
// variable).
func (v *TypeVar) Name() string { return v.name }

// UpperBound returns the variable's upper bound.
func (v *TypeVar) UpperBound() Type { return v.upper }

// LowerBound returns a capture variable's lower bound (the null type
// for a declared type parameter, which has none).
func (v *TypeVar) LowerBound() Type {
	if v.isCapture {
		return v.lower
	}
	return nullTypeSingleton
}

// IsCaptured reports whether this is a capture variable, as opposed to
// a declared type parameter.
func (v *TypeVar) IsCaptured() bool { return v.isCapture }

// String implements Type.
func (v *TypeVar) String() string {
	if v.isCapture {
		return "capture#" + v.upper.String()
	}
	return v.name
}

// captureWildcard produces a fresh capture variable for a wildcard type
// argument, with bounds derived from the wildcard per JLS 5.1.10:
//
//   - "? extends U" captures to a variable bounded [null, U]
//   - "? super L"   captures to a variable bounded [L, Object]
//   - "?"           captures to a variable bounded [null, Object]
//
// declaredBound is the formal type parameter's own declared bound,
// which narrows the capture's upper bound when it is more specific
// than the wildcard's (JLS: "glb(U, Bi)").
func captureWildcard(w *Wildcard, declaredBound Type) *TypeVar {
	v := &TypeVar{isCapture: true}
	if w.IsLowerBound() {
		v.lower = w.bound
		v.upper = declaredBound
	} else {
		v.lower = nullTypeSingleton
		if w.isUnbounded() {
			v.upper = declaredBound
		} else {
			v.upper = glbOf(w.bound, declaredBound)
		}
	}
	return v
}
