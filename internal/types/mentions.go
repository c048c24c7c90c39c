package types

import "github.com/hashicorp/go-set/v3"

// mentionsDepthLimit bounds the recursion mentions will perform before
// giving up and reporting false, per spec.md §7 ("runaway recursion") --
// a pathological F-bounded chain fails the single query it is part of
// rather than the whole compilation.
const mentionsDepthLimit = 4096

// Mentions reports whether t references any variable in vars (a set of
// TypeVar or InferenceVar values, compared by identity). Recursion
// guards itself with a seen-set to cut cycles like <E extends Enum<E>>
// and a depth cap as a backstop.
func Mentions(t Type, vars *set.Set[Type]) bool {
	if vars.Empty() {
		return false
	}
	return mentionsRec(t, vars, set.New[Type](8), 0)
}

func mentionsRec(t Type, vars, seen *set.Set[Type], depth int) bool {
	if t == nil || depth > mentionsDepthLimit {
		return false
	}
	if vars.Contains(t) {
		return true
	}
	if !seen.Insert(t) {
		return false
	}

	switch t := t.(type) {
	case *TypeVar:
		if t.isCapture && mentionsRec(t.lower, vars, seen, depth+1) {
			return true
		}
		return mentionsRec(t.upper, vars, seen, depth+1)
	case *ClassType:
		if t.enclosing != nil && mentionsRec(t.enclosing, vars, seen, depth+1) {
			return true
		}
		for _, a := range t.typeArgs {
			if mentionsRec(a, vars, seen, depth+1) {
				return true
			}
		}
		return false
	case *ArrayType:
		return mentionsRec(t.elem, vars, seen, depth+1)
	case *Wildcard:
		return mentionsRec(t.bound, vars, seen, depth+1)
	case *Intersection:
		if t.superclass != nil && mentionsRec(t.superclass, vars, seen, depth+1) {
			return true
		}
		for _, i := range t.interfaces {
			if mentionsRec(i, vars, seen, depth+1) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// mentionsAny reports whether t mentions any of vars.
func mentionsAny(t Type, vars []Type) bool {
	if len(vars) == 0 {
		return false
	}
	s := set.New[Type](len(vars))
	s.InsertSlice(vars)
	return Mentions(t, s)
}

// mentionsAnyTvar reports whether t mentions any of the given type
// parameters. This is the F-bound check NonWildcardParameterization and
// the upward projection rule need: "does this declared bound mention
// one of its own class's formals".
func mentionsAnyTvar(t Type, tvars []*TypeVar) bool {
	if len(tvars) == 0 {
		return false
	}
	vars := make([]Type, len(tvars))
	for i, v := range tvars {
		vars[i] = v
	}
	return mentionsAny(t, vars)
}
