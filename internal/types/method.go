package types

// MethodSig is a method signature as seen from one particular
// parameterisation of its declaring type: the same MethodSymbol viewed
// from two different ClassTypes produces two different MethodSigs
// (spec.md §3, "a method signature is a view").
type MethodSig struct {
	Declaring   *ClassType
	Symbol      *MethodSymbol
	FormalTypeParams []*TypeVar
	ParamTypes  []Type
	ReturnType  Type
	ThrownTypes []Type
}

// NewMethodSig builds the view of sym as declared on declaring: sym's
// own signature, substituted by declaring's type-parameter mapping (the
// empty substitution if declaring is raw or non-generic).
func NewMethodSig(declaring *ClassType, sym *MethodSymbol) *MethodSig {
	sub := declaring.typeParamSubst()
	return &MethodSig{
		Declaring:        declaring,
		Symbol:           sym,
		FormalTypeParams: substTypeVarList(sym.FormalTypeParams, sub),
		ParamTypes:       substList(sym.ParamTypes, sub),
		ReturnType:       Subst(sym.ReturnType, sub),
		ThrownTypes:      substList(sym.ThrownTypes, sub),
	}
}

// Name is sym's name, unaffected by substitution.
func (m *MethodSig) Name() string { return m.Symbol.Name }

// Arity is the number of formal parameters.
func (m *MethodSig) Arity() int { return len(m.ParamTypes) }

// IsGeneric reports whether this view still declares its own type
// parameters (as opposed to them having been erased or never existing).
func (m *MethodSig) IsGeneric() bool { return len(m.FormalTypeParams) > 0 }

// Erase returns the erasure of this signature: no type parameters, and
// every parameter/return/thrown type replaced by its erasure.
func (m *MethodSig) Erase() *MethodSig {
	params := make([]Type, len(m.ParamTypes))
	for i, p := range m.ParamTypes {
		params[i] = Erasure(p)
	}
	thrown := make([]Type, len(m.ThrownTypes))
	for i, th := range m.ThrownTypes {
		thrown[i] = Erasure(th)
	}
	return &MethodSig{
		Declaring:   m.Declaring,
		Symbol:      m.Symbol,
		ParamTypes:  params,
		ReturnType:  Erasure(m.ReturnType),
		ThrownTypes: thrown,
	}
}
