package types

import "strings"

// ClassType is a (possibly parameterised, possibly raw) use of a class
// or interface symbol: C<A1, ..., An>, with an optional enclosing
// instance type for inner classes.
//
// Equality is structural over (binary name, hasErasedSupertypes,
// enclosing type, type arguments) -- see Identical in same.go.
type ClassType struct {
	typ
	symbol   *ClassSymbol
	typeArgs []Type // empty means raw
	enclosing *ClassType // nil for a non-inner class, or a top-level use

	// hasErasedSupertypes marks a type whose supertype chain could not
	// be fully resolved (e.g. a symbol loaded from an unresolved
	// reference higher in the hierarchy). It participates in structural
	// equality exactly like any other field.
	hasErasedSupertypes bool
}

// NewClassType creates a class type use. typeArgs may be empty (raw).
func NewClassType(symbol *ClassSymbol, typeArgs []Type) *ClassType {
	return &ClassType{symbol: symbol, typeArgs: typeArgs}
}

// WithEnclosing returns a copy of t with the given enclosing instance
// type.
func (t *ClassType) WithEnclosing(enclosing *ClassType) *ClassType {
	cp := *t
	cp.enclosing = enclosing
	return &cp
}

// WithErasedSupertypes returns a copy of t with hasErasedSupertypes set.
func (t *ClassType) WithErasedSupertypes() *ClassType {
	cp := *t
	cp.hasErasedSupertypes = true
	return &cp
}

// Symbol returns the underlying class symbol.
func (t *ClassType) Symbol() *ClassSymbol { return t.symbol }

// TypeArgs returns the type argument list (empty for a raw type).
func (t *ClassType) TypeArgs() []Type { return t.typeArgs }

// Enclosing returns the enclosing instance type, or nil.
func (t *ClassType) Enclosing() *ClassType { return t.enclosing }

// HasErasedSupertypes reports whether t's supertype chain is known to
// be incomplete.
func (t *ClassType) HasErasedSupertypes() bool { return t.hasErasedSupertypes }

// WithTypeArguments returns a copy of t with a new type argument list of
// the same length.
func (t *ClassType) WithTypeArguments(args []Type) *ClassType {
	cp := *t
	cp.typeArgs = args
	return &cp
}

// FormalTypeParams returns the symbol's declared type parameters.
func (t *ClassType) FormalTypeParams() []*TypeVar { return t.symbol.FormalTypeParams }

// SuperClass returns the parameterised superclass of t, substituting
// t's type arguments into the symbol's declared superclass, or nil if
// there is none (Object, or an interface).
func (t *ClassType) SuperClass() *ClassType {
	if t.symbol.Superclass == nil {
		return nil
	}
	sub := t.typeParamSubst()
	return Subst(t.symbol.Superclass, sub).(*ClassType)
}

// SuperInterfaces returns the parameterised superinterfaces of t, in
// declaration order.
func (t *ClassType) SuperInterfaces() []*ClassType {
	sub := t.typeParamSubst()
	out := make([]*ClassType, len(t.symbol.SuperInterfaces))
	for i, it := range t.symbol.SuperInterfaces {
		out[i] = Subst(it, sub).(*ClassType)
	}
	return out
}

// typeParamSubst returns the substitution mapping t's symbol's formal
// type parameters to t's actual type arguments. For a raw type this is
// the empty substitution (members are accessed through the erasure
// path instead).
func (t *ClassType) typeParamSubst() Substitution {
	if len(t.typeArgs) == 0 {
		return EmptySubst
	}
	s := make(Substitution, len(t.symbol.FormalTypeParams))
	for i, p := range t.symbol.FormalTypeParams {
		s[p] = t.typeArgs[i]
	}
	return s
}

// String implements Type.
func (t *ClassType) String() string {
	var b strings.Builder
	if t.enclosing != nil {
		b.WriteString(t.enclosing.String())
		b.WriteString(".")
	}
	b.WriteString(t.symbol.SimpleName)
	if len(t.typeArgs) > 0 {
		b.WriteString("<")
		for i, a := range t.typeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(">")
	}
	return b.String()
}
