package types

// NoDownProjection is the sentinel ProjectDownwards returns when no
// down-projection exists (it is a partial function): a nil Type. A
// caller receiving it from a composite's recursive descent must
// propagate it rather than wrap it further.
var NoDownProjection Type = nil

// ProjectUpwards returns a supertype of t that mentions no restricted
// variable (capture or inference variable), for local-variable type
// inference (spec.md §4.H, JLS 4.10.5).
func ProjectUpwards(t Type) Type {
	return projectVisit(t, true)
}

// ProjectDownwards returns a subtype of t free of restricted variables,
// or NoDownProjection if none exists.
func ProjectDownwards(t Type) Type {
	return projectVisit(t, false)
}

func projectVisit(t Type, upwards bool) Type {
	switch t := t.(type) {
	case *TypeVar:
		if !t.isCapture {
			return t
		}
		if upwards {
			return projectVisit(t.upper, true)
		}
		return projectVisit(t.lower, false)
	case *NullType:
		if upwards {
			return t
		}
		return NoDownProjection
	case *Wildcard:
		return projectWildcard(t, upwards)
	case *ClassType:
		return projectClass(t, upwards)
	case *Intersection:
		return projectIntersection(t, upwards)
	case *ArrayType:
		return projectArray(t, upwards)
	default:
		// Sentinel, Primitive, InferenceVar: inference vars are only
		// ever projected after a solution has replaced them, so there
		// is nothing left here to restrict.
		return t
	}
}

// projectWildcard mirrors the pair of Java visitors exactly: both start
// by computing the upward projection of the bound, then branch on
// direction and polarity.
func projectWildcard(w *Wildcard, upwards bool) Type {
	u := projectVisit(w.bound, true)
	if u == w.bound {
		return w
	}
	if upwards {
		if w.upper {
			return NewUpperWildcard(u)
		}
		down := projectVisit(w.bound, false)
		if down == NoDownProjection {
			return unboundedWildcard
		}
		return NewLowerWildcard(down)
	}
	if w.upper {
		down := projectVisit(w.bound, false)
		if down == NoDownProjection {
			return NoDownProjection
		}
		return NewUpperWildcard(down)
	}
	return NewLowerWildcard(u)
}

func projectClass(t *ClassType, upwards bool) Type {
	if !IsParameterized(t) {
		return t
	}
	formals := t.FormalTypeParams()
	newArgs := make([]Type, len(t.typeArgs))
	changed := false
	for i, ai := range t.typeArgs {
		u := projectVisit(ai, upwards)
		if _, isWildcard := ai.(*Wildcard); u == ai || isWildcard {
			if u == NoDownProjection {
				return NoDownProjection
			}
			newArgs[i] = u
			changed = changed || u != ai
			continue
		}
		if !upwards {
			return NoDownProjection
		}
		changed = true

		bi := formals[i].upper
		if !Identical(u, objectSentinel, false) && (mentionsAnyTvar(bi, formals) || !IsSubtype(bi, u, false)) {
			newArgs[i] = NewUpperWildcard(u)
		} else if down := projectVisit(ai, false); down == NoDownProjection {
			newArgs[i] = unboundedWildcard
		} else {
			newArgs[i] = NewLowerWildcard(down)
		}
	}
	if !changed {
		return t
	}
	return t.WithTypeArguments(newArgs)
}

func projectIntersection(t *Intersection, upwards bool) Type {
	comps := t.components()
	newComps := make([]Type, len(comps))
	changed := false
	for i, c := range comps {
		proj := projectVisit(c, upwards)
		if proj == NoDownProjection {
			return NoDownProjection
		}
		newComps[i] = proj
		if proj != c {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return intersectFromComponents(newComps)
}

func projectArray(t *ArrayType, upwards bool) Type {
	comp2 := projectVisit(t.elem, upwards)
	if comp2 == NoDownProjection {
		return NoDownProjection
	}
	if comp2 == t.elem {
		return t
	}
	return &ArrayType{elem: comp2}
}

// intersectFromComponents rebuilds an intersection from an already
// well-formed component list (at most one non-interface), used when a
// projection or GLB changes some but not all components.
func intersectFromComponents(comps []Type) Type {
	var superclass Type
	var interfaces []Type
	for _, c := range comps {
		if ct, ok := c.(*ClassType); ok && !ct.symbol.IsInterface() {
			superclass = c
			continue
		}
		interfaces = append(interfaces, c)
	}
	if len(interfaces) == 0 {
		return superclass
	}
	return NewIntersection(superclass, interfaces)
}
