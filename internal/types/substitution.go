package types

// Substitution maps substitution variables -- declared type parameters
// or capture variables -- to the type term that replaces them. A nil
// Substitution is the distinguished empty substitution (EmptySubst):
// Subst on it always returns its input unchanged, by pointer.
type Substitution map[*TypeVar]Type

// EmptySubst is the identity substitution.
var EmptySubst Substitution

// mapping builds the substitution that renames each from[i] to to[i],
// the way adaptForTypeParameters and haveSameTypeParams do when
// comparing two methods' generic signatures.
func mapping(from []*TypeVar, to []Type) Substitution {
	if len(from) == 0 {
		return EmptySubst
	}
	s := make(Substitution, len(from))
	for i, v := range from {
		s[v] = to[i]
	}
	return s
}

// typeVarsToTypes widens a []*TypeVar to a []Type for callers of
// mapping that rename type variables to other type variables.
func typeVarsToTypes(vs []*TypeVar) []Type {
	if vs == nil {
		return nil
	}
	ts := make([]Type, len(vs))
	for i, v := range vs {
		ts[i] = v
	}
	return ts
}

// Subst walks t into its children and returns a term differing from t
// only where a variable substitution occurred. If no descendant
// changed, the same Type value is returned (pointer-equal to t), so
// callers can test "did Subst do anything" with ==.
func Subst(t Type, s Substitution) Type {
	if t == nil || len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case *TypeVar:
		if repl, ok := s[t]; ok {
			return repl
		}
		return t
	case *ClassType:
		newArgs := substList(t.typeArgs, s)
		var newEnclosing *ClassType
		if t.enclosing != nil {
			newEnclosing = Subst(t.enclosing, s).(*ClassType)
		}
		if sameSlice(newArgs, t.typeArgs) && newEnclosing == t.enclosing {
			return t
		}
		cp := *t
		cp.typeArgs = newArgs
		cp.enclosing = newEnclosing
		return &cp
	case *ArrayType:
		newElem := Subst(t.elem, s)
		if newElem == t.elem {
			return t
		}
		return &ArrayType{elem: newElem}
	case *Wildcard:
		newBound := Subst(t.bound, s)
		if newBound == t.bound {
			return t
		}
		if t.upper {
			return NewUpperWildcard(newBound)
		}
		return NewLowerWildcard(newBound)
	case *Intersection:
		var newSuper Type
		if t.superclass != nil {
			newSuper = Subst(t.superclass, s)
		}
		newIfaces := substList(t.interfaces, s)
		if newSuper == t.superclass && sameSlice(newIfaces, t.interfaces) {
			return t
		}
		return &Intersection{superclass: newSuper, interfaces: newIfaces}
	default:
		// Primitive, NullType, Sentinel, InferenceVar: never mention
		// substitution variables, so they pass through unchanged.
		return t
	}
}

// substList applies Subst element-wise, preserving the input slice's
// identity when no element changed (one allocation, on first change).
func substList(ts []Type, s Substitution) []Type {
	if len(s) == 0 {
		return ts
	}
	var out []Type
	for i, t := range ts {
		nt := Subst(t, s)
		if out == nil && nt != t {
			out = make([]Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = nt
		}
	}
	if out == nil {
		return ts
	}
	return out
}

func sameSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// substInBounds substitutes only inside v's bound(s), leaving v's own
// identity (name, capture-ness) untouched: it never substitutes v
// itself, even if v happens to be a key of s. Used (through
// substTypeVarList) by NewMethodSig to view a method's own type
// parameters through its declaring type's substitution.
func substInBounds(v *TypeVar, s Substitution) *TypeVar {
	newUpper := Subst(v.upper, s)
	if v.isCapture {
		newLower := Subst(v.lower, s)
		if newUpper == v.upper && newLower == v.lower {
			return v
		}
		return &TypeVar{name: v.name, upper: newUpper, lower: newLower, isCapture: true}
	}
	if newUpper == v.upper {
		return v
	}
	return &TypeVar{name: v.name, upper: newUpper}
}

// substTypeVarList applies substInBounds element-wise, preserving the
// input slice's identity when no element changed.
func substTypeVarList(vs []*TypeVar, s Substitution) []*TypeVar {
	if len(s) == 0 {
		return vs
	}
	var out []*TypeVar
	for i, v := range vs {
		nv := substInBounds(v, s)
		if out == nil && nv != v {
			out = make([]*TypeVar, len(vs))
			copy(out, vs[:i])
		}
		if out != nil {
			out[i] = nv
		}
	}
	if out == nil {
		return vs
	}
	return out
}
