package types

import "github.com/sorrel-lang/jtypes/internal/tlog"

var subtypeLogger = tlog.Section("subtype")

// IsSubtype returns true when t <: s (spec.md §4.F), with unchecked
// controlling whether an unchecked conversion (raw supertype on one
// side of a parameterised comparison) is accepted.
func IsSubtype(t, s Type, unchecked bool) bool {
	if Identical(t, s, false) {
		return true
	}
	if sentinel, ok := s.(*Sentinel); ok && sentinel.kind == Object && !IsPrimitive(t) {
		return true
	}
	if iv, ok := s.(*InferenceVar); ok {
		iv.AddBound(Lower, t)
		return true
	}
	if isUnresolved(t) {
		// Propagates without cascading errors; intentionally asymmetric
		// -- an unresolved S never short-circuits the check.
		return true
	}

	switch ct := capture(t).(type) {
	case *TypeVar:
		if isTypeRange(s) {
			return IsSubtype(ct, lowerBoundRec(s), unchecked)
		}
		return IsSubtype(ct.upper, s, unchecked)
	case *NullType:
		return !IsPrimitive(s)
	case *Sentinel:
		// Object, Cloneable and Serializable are ordinary reference types:
		// here s is neither t itself nor Object, so t is not a subtype.
		switch ct.kind {
		case Object, Cloneable, Serializable:
			return false
		}
		return true
	case *InferenceVar:
		if _, ok := s.(*NullType); ok || IsPrimitive(s) {
			return false
		}
		ct.AddBound(Upper, s)
		return true
	case *Wildcard:
		// Must have been captured by now; a bare wildcard as t is not
		// a meaningful subtype query.
		return false
	case *ClassType:
		return classIsSubtype(ct, s, unchecked)
	case *Intersection:
		for _, comp := range ct.components() {
			if IsSubtype(comp, s, unchecked) {
				return true
			}
		}
		return false
	case *ArrayType:
		return arrayIsSubtype(ct, s, unchecked)
	case *Primitive:
		return primitiveIsSubtype(ct, s)
	default:
		return false
	}
}

func isUnresolved(t Type) bool {
	if s, ok := t.(*Sentinel); ok && (s.kind == UnresolvedType || s.kind == ErrorType) {
		return true
	}
	ct, ok := t.(*ClassType)
	return ok && ct.symbol.IsUnresolved()
}

// isTypeRange reports whether s denotes a range of types rather than a
// single one: a wildcard, or a capture variable (which always carries
// both bounds of the wildcard it captured).
func isTypeRange(t Type) bool {
	if _, ok := t.(*Wildcard); ok {
		return true
	}
	v, ok := t.(*TypeVar)
	return ok && v.isCapture
}

// lowerBoundRec unwraps t to a concrete (non-type-range) lower bound:
// a wildcard's lower bound (recursively), or a capture variable's lower
// bound (recursively); anything else is returned unchanged.
func lowerBoundRec(t Type) Type {
	if w, ok := t.(*Wildcard); ok {
		return lowerBoundRec(w.lowerBound())
	}
	if v, ok := t.(*TypeVar); ok && v.isCapture {
		return lowerBoundRec(v.lower)
	}
	return t
}

// recUpperBound and recLowerBound unwrap a chain of wildcards (but not
// captures) to their upper/lower bound, for typeArgContains.
func recUpperBound(t Type) Type {
	if w, ok := t.(*Wildcard); ok {
		return recUpperBound(w.upperBound())
	}
	return t
}

func recLowerBound(t Type) Type {
	if w, ok := t.(*Wildcard); ok {
		return recLowerBound(w.lowerBound())
	}
	return t
}

// TypeArgContains reports whether "t contains s" (S <= T in spec.md
// §4.F's notation), the pairwise check behind C<T1,..> <: C<S1,..>.
func TypeArgContains(t, s Type) bool {
	if Identical(t, s, true) {
		return true
	}
	w, ok := t.(*Wildcard)
	if !ok {
		return false
	}
	lowerOK := w.IsUpperBound() || IsSubtype(w.lowerBound(), recLowerBound(s), false)
	upperOK := w.IsLowerBound() || IsSubtype(recUpperBound(s), w.upperBound(), false)
	return lowerOK && upperOK
}

func classIsSubtype(t *ClassType, s Type, unchecked bool) bool {
	if sentinel, ok := s.(*Sentinel); ok && sentinel.kind == Object {
		return true
	}
	if it, ok := s.(*Intersection); ok {
		// T <: S requires T conform to every component of an
		// intersection S (symmetric to T-is-intersection needing only
		// one component to work, handled by IsSubtype's own case).
		for _, comp := range it.components() {
			if !IsSubtype(t, comp, unchecked) {
				return false
			}
		}
		return true
	}
	if isTypeRange(s) {
		return IsSubtype(t, lowerBoundRec(s), unchecked)
	}
	cs, ok := s.(*ClassType)
	if !ok {
		// Wildcards are only ever compared through type-argument
		// containment, never directly here.
		return false
	}

	superDecl, ok := AsSuper(t, cs.symbol).(*ClassType)
	if !ok {
		subtypeLogger.Debug("classIsSubtype: no common supertype", "t", t, "s", s)
		return false
	}

	return unchecked && IsRaw(superDecl) ||
		IsRaw(cs) ||
		typeArgsAreContained(superDecl.typeArgs, cs.typeArgs, unchecked)
}

func typeArgsAreContained(targs, sargs []Type, unchecked bool) bool {
	if len(targs) == 0 && len(sargs) != 0 {
		// T is raw; safe unchecked conversion only when S's every
		// argument is an unbounded wildcard.
		return unchecked && allUnboundedWildcards(sargs)
	}
	for i := range targs {
		if !TypeArgContains(sargs[i], targs[i]) {
			return false
		}
	}
	return true
}

func allUnboundedWildcards(args []Type) bool {
	for _, a := range args {
		w, ok := a.(*Wildcard)
		if !ok || !w.isUnbounded() {
			return false
		}
	}
	return true
}

func arrayIsSubtype(t *ArrayType, s Type, unchecked bool) bool {
	if sentinel, ok := s.(*Sentinel); ok {
		switch sentinel.kind {
		case Object, Cloneable, Serializable:
			return true
		}
	}
	cs, ok := s.(*ArrayType)
	if !ok {
		return false
	}
	if IsPrimitive(t.elem) || IsPrimitive(cs.elem) {
		return Identical(t.elem, cs.elem, false)
	}
	return IsSubtype(t.elem, cs.elem, unchecked)
}

func primitiveIsSubtype(t *Primitive, s Type) bool {
	p, ok := s.(*Primitive)
	return ok && widens(t.kind, p.kind)
}

// capture performs JLS 5.1.10 capture conversion on a class type: every
// wildcard type argument is replaced by a fresh capture variable whose
// bounds derive from the wildcard and the formal parameter's declared
// bound, with the formals' own mutual references (F-bounds) resolved
// against the fresh captures. Anything that is not a class type with at
// least one wildcard argument is returned unchanged.
func capture(t Type) Type {
	ct, ok := t.(*ClassType)
	if !ok {
		return t
	}
	hasWildcard := false
	for _, a := range ct.typeArgs {
		if _, ok := a.(*Wildcard); ok {
			hasWildcard = true
			break
		}
	}
	if !hasWildcard {
		return t
	}

	formals := ct.FormalTypeParams()
	newArgs := make([]Type, len(ct.typeArgs))
	copy(newArgs, ct.typeArgs)

	captures := make([]*TypeVar, len(ct.typeArgs))
	for i, a := range ct.typeArgs {
		if _, ok := a.(*Wildcard); ok {
			v := &TypeVar{isCapture: true}
			captures[i] = v
			newArgs[i] = v
		}
	}

	subtypeLogger.Debug("capture conversion", "type", ct)

	sub := make(Substitution, len(formals))
	for i, f := range formals {
		sub[f] = newArgs[i]
	}

	for i, a := range ct.typeArgs {
		w, ok := a.(*Wildcard)
		if !ok {
			continue
		}
		declaredBound := Subst(formals[i].upper, sub)
		derived := captureWildcard(w, declaredBound)
		captures[i].upper = derived.upper
		captures[i].lower = derived.lower
	}

	return ct.WithTypeArguments(newArgs)
}
