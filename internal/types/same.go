package types

// Identical is reflexive structural equality (spec.md §4.D). Both nil
// is true; one nil is false. In pure mode (inInference == false) two
// distinct InferenceVar pointers are never equal, and comparison is
// symmetric. In inference mode, comparing against an InferenceVar has
// the side effect of accreting a bound on it rather than failing outright
// -- see sameTypeInferenceVar.
func Identical(t, s Type, inInference bool) bool {
	if t == nil && s == nil {
		return true
	}
	if t == nil || s == nil {
		return false
	}
	if t == s {
		return true
	}

	if inInference {
		if _, tIsVar := t.(*InferenceVar); !tIsVar {
			if _, sIsVar := s.(*InferenceVar); sIsVar {
				t, s = s, t
			}
		}
		if v, ok := t.(*InferenceVar); ok {
			return sameTypeInferenceVar(v, s)
		}
	} else {
		_, tIsVar := t.(*InferenceVar)
		_, sIsVar := s.(*InferenceVar)
		if tIsVar || sIsVar {
			return t == s
		}
	}

	switch t := t.(type) {
	case *Primitive:
		p, ok := s.(*Primitive)
		return ok && p.kind == t.kind
	case *Sentinel:
		sv, ok := s.(*Sentinel)
		return ok && sv.kind == t.kind
	case *NullType:
		_, ok := s.(*NullType)
		return ok
	case *TypeVar:
		return t == s
	case *ClassType:
		c, ok := s.(*ClassType)
		return ok && sameClassType(t, c, inInference)
	case *Wildcard:
		w, ok := s.(*Wildcard)
		return ok && t.upper == w.upper && Identical(t.bound, w.bound, inInference)
	case *Intersection:
		it, ok := s.(*Intersection)
		return ok && sameIntersection(t, it, inInference)
	case *ArrayType:
		at, ok := s.(*ArrayType)
		return ok && Identical(t.elem, at.elem, inInference)
	default:
		return false
	}
}

// sameTypeInferenceVar implements the inference-mode InferenceVar rules:
// never equal to a primitive; absorb a wildcard's bound as an UPPER or
// LOWER bound depending on its polarity; otherwise record an EQ bound.
// Either way, once v is not compared against a primitive, the
// comparison succeeds -- it is the caller's job to later check that the
// accreted bound set is satisfiable.
func sameTypeInferenceVar(v *InferenceVar, s Type) bool {
	if IsPrimitive(s) {
		return false
	}
	if w, ok := s.(*Wildcard); ok {
		if w.upper {
			v.AddBound(Upper, w.bound)
		} else {
			v.AddBound(Lower, w.bound)
		}
		return true
	}
	v.AddBound(Eq, s)
	return true
}

func sameClassType(x, y *ClassType, inInference bool) bool {
	if x.symbol.BinaryName != y.symbol.BinaryName {
		return false
	}
	if x.hasErasedSupertypes != y.hasErasedSupertypes {
		return false
	}
	if (x.enclosing == nil) != (y.enclosing == nil) {
		return false
	}
	if x.enclosing != nil && !Identical(x.enclosing, y.enclosing, inInference) {
		return false
	}
	return AreSameTypes(x.typeArgs, y.typeArgs, inInference)
}

// sameIntersection compares superclass components directly and matches
// interface components by a bijection keyed on erasure: two interface
// lists are the same iff every component in x pairs with a distinct,
// not-yet-used component in y whose erasure is identical and whose
// actual type arguments are the same type. This tolerates declaration
// reordering without treating unrelated interfaces as equal.
func sameIntersection(x, y *Intersection, inInference bool) bool {
	if (x.superclass == nil) != (y.superclass == nil) {
		return false
	}
	if x.superclass != nil && !Identical(x.superclass, y.superclass, inInference) {
		return false
	}
	if len(x.interfaces) != len(y.interfaces) {
		return false
	}
	used := make([]bool, len(y.interfaces))
	for _, xi := range x.interfaces {
		matched := false
		for j, yi := range y.interfaces {
			if used[j] {
				continue
			}
			if !Identical(Erasure(xi), Erasure(yi), false) {
				continue
			}
			if Identical(xi, yi, inInference) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// AreSameTypes reports whether two equal-length type lists are pairwise
// the same type, in the given mode.
func AreSameTypes(ts, ss []Type, inInference bool) bool {
	if len(ts) != len(ss) {
		return false
	}
	for i := range ts {
		if !Identical(ts[i], ss[i], inInference) {
			return false
		}
	}
	return true
}
