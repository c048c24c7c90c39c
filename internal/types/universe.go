package types

// TypeSystem is the single read-only-after-construction authority for
// interned singletons and type-construction helpers. Every algebra
// operation in this package that needs Object, the null type, or a
// fresh inference variable goes through it (or, for the hot interior
// paths, through the package-level singletons it wraps) rather than
// constructing its own copy -- see spec.md §5, "shared resources".
//
// A *TypeSystem is safe for concurrent use by multiple readers once
// constructed; nothing in it is mutated afterwards except the
// inference-variable id counter, which callers must not share across
// concurrent inference sessions (spec.md §5 assigns that serialization
// to the caller).
type TypeSystem struct {
	nextInferenceVarID int
}

// NewTypeSystem constructs a TypeSystem. There is normally exactly one
// per analysis run; constructing it is the external front end's job.
func NewTypeSystem() *TypeSystem {
	return &TypeSystem{}
}

// The distinguished singleton reference types. These are package-level
// rather than fields of TypeSystem because every Type implementation in
// this file's siblings (composite.go, typevar.go, ...) needs to name
// Object or the null type without threading a *TypeSystem through every
// constructor.
var (
	objectSentinel         = &Sentinel{kind: Object}
	cloneableSentinel      = &Sentinel{kind: Cloneable}
	serializableSentinel   = &Sentinel{kind: Serializable}
	unresolvedTypeSentinel = &Sentinel{kind: UnresolvedType}
	errorTypeSentinel      = &Sentinel{kind: ErrorType}
	noTypeSentinel         = &Sentinel{kind: NoType}

	nullTypeSingleton = &NullType{}

	// unboundedWildcard is UNBOUNDED_WILD from spec.md §2: structurally
	// just "? extends Object", since every consumer (containment,
	// subtyping, projection) already dispatches on Wildcard and treats
	// an Object-bounded upper wildcard as trivial.
	unboundedWildcard = NewUpperWildcard(objectSentinel)
)

// Object returns the interned java.lang.Object sentinel.
func (ts *TypeSystem) Object() Type { return objectSentinel }

// Cloneable returns the interned java.lang.Cloneable sentinel.
func (ts *TypeSystem) Cloneable() Type { return cloneableSentinel }

// Serializable returns the interned java.io.Serializable sentinel.
func (ts *TypeSystem) Serializable() Type { return serializableSentinel }

// UnresolvedType returns the sentinel standing in for a type that could
// not be resolved by the front end.
func (ts *TypeSystem) UnresolvedType() Type { return unresolvedTypeSentinel }

// ErrorType returns the sentinel produced in place of a type after a
// compile-time error.
func (ts *TypeSystem) ErrorType() Type { return errorTypeSentinel }

// NoType returns the sentinel used for void and constructor return
// positions.
func (ts *TypeSystem) NoType() Type { return noTypeSentinel }

// NullType returns the interned null type.
func (ts *TypeSystem) NullType() Type { return nullTypeSingleton }

// UnboundedWild returns the interned unbounded wildcard "?".
func (ts *TypeSystem) UnboundedWild() *Wildcard { return unboundedWildcard }

// ArrayType constructs an array type over elem.
func (ts *TypeSystem) ArrayType(elem Type) *ArrayType { return NewArray(elem) }

// Wildcard constructs a bounded wildcard; isUpper selects "? extends
// bound" over "? super bound".
func (ts *TypeSystem) Wildcard(isUpper bool, bound Type) *Wildcard {
	if isUpper {
		return NewUpperWildcard(bound)
	}
	return NewLowerWildcard(bound)
}

// Intersect constructs an intersection type from an optional superclass
// and one or more interfaces.
func (ts *TypeSystem) Intersect(superclass Type, interfaces []Type) *Intersection {
	return NewIntersection(superclass, interfaces)
}

// Declaration returns symbol's generic declaration type: the raw use of
// symbol with no type arguments and no enclosing instance, the value
// Erasure bottoms out on for a class type.
func (ts *TypeSystem) Declaration(symbol *ClassSymbol) Type {
	return ts.declarationType(symbol)
}

func (ts *TypeSystem) declarationType(symbol *ClassSymbol) *ClassType {
	return &ClassType{symbol: symbol}
}

// GLB computes the greatest lower bound of one or more types per JLS
// 5.1.10: intersections are flattened, Object is elided whenever a more
// specific component is present, duplicates (by structural identity)
// are collapsed, and the single remaining class component (if any)
// leads the resulting intersection's component list.
func (ts *TypeSystem) GLB(bounds ...Type) Type {
	return glbOf(bounds...)
}

func glbOf(bounds ...Type) Type {
	var components []Type
	var add func(t Type)
	add = func(t Type) {
		if t == nil {
			return
		}
		if it, ok := t.(*Intersection); ok {
			if it.superclass != nil {
				add(it.superclass)
			}
			for _, i := range it.interfaces {
				add(i)
			}
			return
		}
		if s, ok := t.(*Sentinel); ok && s.kind == Object {
			return
		}
		for _, c := range components {
			if Identical(c, t, false) {
				return
			}
		}
		components = append(components, t)
	}
	for _, t := range bounds {
		add(t)
	}
	switch len(components) {
	case 0:
		return objectSentinel
	case 1:
		return components[0]
	}

	var superclass Type
	var interfaces []Type
	for _, c := range components {
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

// NextInferenceVar mints a fresh inference variable with the next
// session-local id. Callers running concurrent inference sessions must
// use separate TypeSystem-adjacent counters (spec.md §5); this method
// itself is not safe to call concurrently on the same *TypeSystem.
func (ts *TypeSystem) NextInferenceVar() *InferenceVar {
	ts.nextInferenceVarID++
	return NewInferenceVar(ts.nextInferenceVarID)
}

// UncheckedConvertible reports whether an unchecked conversion from raw
// to S is considered "safe unchecked": every one of S's type arguments
// is the unbounded wildcard. This is the same test isSubtype's
// raw/parameterised branch applies (through allUnboundedWildcards in
// subtype.go) to decide whether the unchecked flag alone suffices.
func (ts *TypeSystem) UncheckedConvertible(s *ClassType) bool {
	for _, arg := range s.typeArgs {
		w, ok := arg.(*Wildcard)
		if !ok || !w.isUnbounded() {
			return false
		}
	}
	return true
}

// NewClassSymbol creates a ClassSymbol owned by ts. Populating its
// fields (superclass, interfaces, methods, ...) is the loader's job;
// this package only reads a ClassSymbol once built.
func (ts *TypeSystem) NewClassSymbol(binaryName, simpleName, packageName string) *ClassSymbol {
	return &ClassSymbol{ts: ts, BinaryName: binaryName, SimpleName: simpleName, PackageName: packageName}
}
