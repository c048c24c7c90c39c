package types

// AsSuper returns the unique parameterised supertype of t whose erasure
// is targetSym, or nil if t has none (spec.md §4.G). Preference order
// favors the superclass chain first, since single inheritance gives an
// unambiguous parameterisation, and only searches interfaces when
// targetSym itself names an interface.
func AsSuper(t Type, targetSym *ClassSymbol) Type {
	switch t := t.(type) {
	case *ClassType:
		if t.symbol.Equal(targetSym) {
			return t
		}
		if sup := t.SuperClass(); sup != nil {
			if found := AsSuper(sup, targetSym); found != nil {
				return found
			}
		}
		if targetSym.IsInterface() {
			for _, iface := range t.SuperInterfaces() {
				if found := AsSuper(iface, targetSym); found != nil {
					return found
				}
			}
		}
		return nil
	case *TypeVar:
		return AsSuper(t.upper, targetSym)
	case *Intersection:
		for _, c := range t.components() {
			if found := AsSuper(c, targetSym); found != nil {
				return found
			}
		}
		return nil
	case *ArrayType:
		// Arrays are never parameterised, and their only class-shaped
		// supertypes (Object, Cloneable, Serializable) are sentinels,
		// not ClassSymbols, so no ClassSymbol target can match here.
		return nil
	default:
		return nil
	}
}

// AsOuterSuper is AsSuper, additionally walking t's chain of enclosing
// instance types when no match is found in its own hierarchy -- needed
// to resolve a member declared on an outer class when looking up from
// an inner one.
func AsOuterSuper(t Type, targetSym *ClassSymbol) Type {
	if found := AsSuper(t, targetSym); found != nil {
		return found
	}
	ct, ok := t.(*ClassType)
	if !ok || ct.enclosing == nil {
		return nil
	}
	return AsOuterSuper(ct.enclosing, targetSym)
}
