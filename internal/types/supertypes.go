package types

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/sorrel-lang/jtypes/internal/tlog"
)

var supertypesLogger = tlog.Section("supertypes")

// GetSuperTypeSet returns the reflexive-transitive supertype set of t,
// insertion-ordered with t itself first (spec.md §4.E): for a class,
// its superclass's supertypes depth-first, then its interfaces'
// supertypes in declaration order, with Object appended as a fallback
// for an interface declaring no superinterfaces. For an array, the
// array itself, the elementwise-promoted supertypes of its component
// (skipped for primitive components), then Cloneable, Serializable,
// Object. For a type variable, the variable then its upper bound,
// guarded against F-bounded cycles. The null type has no representable
// supertype set and this panics for it.
func GetSuperTypeSet(t Type) []Type {
	if _, ok := t.(*NullType); ok {
		panic(newDomainError("null type has no supertype set"))
	}
	var out []Type
	visitSuperTypes(t, &out, set.New[*ClassSymbol](8), set.New[*TypeVar](8))
	return out
}

func appendIfNewType(out *[]Type, t Type) {
	for _, o := range *out {
		if Identical(o, t, false) {
			return
		}
	}
	*out = append(*out, t)
}

func visitSuperTypes(t Type, out *[]Type, visitingClasses *set.Set[*ClassSymbol], visitingVars *set.Set[*TypeVar]) {
	appendIfNewType(out, t)

	switch t := t.(type) {
	case *ClassType:
		if !visitingClasses.Insert(t.symbol) {
			supertypesLogger.Debug("cycle guard tripped on class", "symbol", t.symbol.BinaryName)
			return
		}
		defer visitingClasses.Remove(t.symbol)

		if sup := t.SuperClass(); sup != nil {
			visitSuperTypes(sup, out, visitingClasses, visitingVars)
		} else if !t.symbol.IsInterface() {
			appendIfNewType(out, objectSentinel)
		}
		ifaces := t.SuperInterfaces()
		for _, iface := range ifaces {
			visitSuperTypes(iface, out, visitingClasses, visitingVars)
		}
		if t.symbol.IsInterface() && len(ifaces) == 0 {
			appendIfNewType(out, objectSentinel)
		}

	case *ArrayType:
		if !IsPrimitive(t.elem) {
			for _, elemSuper := range GetSuperTypeSet(t.elem) {
				if Identical(elemSuper, t.elem, false) {
					continue
				}
				appendIfNewType(out, &ArrayType{elem: elemSuper})
			}
		}
		appendIfNewType(out, cloneableSentinel)
		appendIfNewType(out, serializableSentinel)
		appendIfNewType(out, objectSentinel)

	case *TypeVar:
		if !visitingVars.Insert(t) {
			return
		}
		defer visitingVars.Remove(t)
		visitSuperTypes(t.upper, out, visitingClasses, visitingVars)

	case *Primitive:
		for _, k := range numericWidensTo[t.kind] {
			appendIfNewType(out, &Primitive{kind: k})
		}
		appendIfNewType(out, objectSentinel)

	case *Sentinel, *Wildcard, *Intersection, *InferenceVar:
		// No further supertypes beyond t itself.
	}
}
