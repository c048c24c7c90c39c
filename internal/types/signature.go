package types

// HaveSameSignature reports whether m1 and m2 have the same name, the
// same arity, the same type parameters (§haveSameTypeParams), and,
// after adapting m2's formal parameter types to m1's type parameters,
// pairwise the same formal parameter types. Thrown exceptions are not
// part of a method's signature.
func HaveSameSignature(m1, m2 *MethodSig) bool {
	if m1.Name() != m2.Name() || m1.Arity() != m2.Arity() {
		return false
	}
	if !haveSameTypeParams(m1, m2) {
		return false
	}
	sub := mapping(m2.FormalTypeParams, typeVarsToTypes(m1.FormalTypeParams))
	return AreSameTypes(m1.ParamTypes, substList(m2.ParamTypes, sub), false)
}

// haveSameTypeParams reports whether m1 and m2 declare the same count
// of type parameters and, pairwise, pi equals qi renamed to pi's names
// -- structural equality of each parameter's bound after renaming.
func haveSameTypeParams(m1, m2 *MethodSig) bool {
	tp1, tp2 := m1.FormalTypeParams, m2.FormalTypeParams
	if len(tp1) != len(tp2) {
		return false
	}
	if len(tp1) == 0 {
		return true
	}
	renameTo1 := mapping(tp2, typeVarsToTypes(tp1))
	for i, p1 := range tp1 {
		p2 := tp2[i]
		if !Identical(p1.upper, Subst(p2.upper, renameTo1), false) {
			return false
		}
	}
	return true
}

// adaptForTypeParameters renames m1's type parameters to m2's, via
// haveSameTypeParams's positional correspondence, returning nil when
// the two do not share a type-parameter shape to adapt across.
func adaptForTypeParameters(m1, m2 *MethodSig) *MethodSig {
	if !haveSameTypeParams(m1, m2) {
		return nil
	}
	sub := mapping(m1.FormalTypeParams, typeVarsToTypes(m2.FormalTypeParams))
	return &MethodSig{
		Declaring:   m1.Declaring,
		Symbol:      m1.Symbol,
		ParamTypes:  substList(m1.ParamTypes, sub),
		ReturnType:  Subst(m1.ReturnType, sub),
		ThrownTypes: substList(m1.ThrownTypes, sub),
	}
}

// IsSubSignature reports whether m1 has the same signature as m2, or
// the same signature as m2's erasure. Asymmetric: a generic m1 is never
// a subsignature of a non-generic m2.
func IsSubSignature(m1, m2 *MethodSig) bool {
	if m1.Arity() != m2.Arity() || m1.Name() != m2.Name() {
		return false
	}
	if m1.IsGeneric() && !m2.IsGeneric() {
		return false
	}
	return HaveSameSignature(m1, m2) || HaveSameSignature(m1, m2.Erase())
}

// AreOverrideEquivalent reports whether m1 and m2 are override
// equivalent: same arity and either is a subsignature of the other. If
// exactly one is generic, the generic side is erased first so a
// generic method can be compared against a non-generic one it
// overrides (or is overridden by).
func AreOverrideEquivalent(m1, m2 *MethodSig) bool {
	if m1.Arity() != m2.Arity() {
		return false
	}
	if m1 == m2 {
		return true
	}
	return IsSubSignature(m1, m2) || IsSubSignature(m2, m1)
}

// IsReturnTypeSubstitutable reports whether m1's return type may stand
// in for m2's at an override site, per JLS 8.4.5 (covariant returns).
func IsReturnTypeSubstitutable(m1, m2 *MethodSig) bool {
	r1, r2 := m1.ReturnType, m2.ReturnType

	if s, ok := r1.(*Sentinel); ok && s.kind == NoType {
		return Identical(r1, r2, false)
	}
	if IsPrimitive(r1) {
		return Identical(r1, r2, false)
	}
	if ct, ok := r1.(*ClassType); ok && IsRaw(ct) {
		if r2ct, ok := r2.(*ClassType); ok {
			if r2ct.symbol.Equal(ct.symbol) || AsSuper(ct, r2ct.symbol) != nil {
				return true
			}
		}
	}

	if m1Prime := adaptForTypeParameters(m1, m2); m1Prime != nil && IsSubtype(m1Prime.ReturnType, r2, false) {
		return true
	}

	if !HaveSameSignature(m1, m2) {
		return Identical(r1, Erasure(r2), false)
	}

	return false
}

// Overrides reports whether m1 overrides m2 when both are viewed as
// members of origin. m1 and m2 may be declared in possibly-unrelated
// supertypes of origin (default methods), hence the third parameter.
// Static-vs-instance is not consulted here: a static method "overriding"
// an instance method (or vice versa) is left for the caller to reject.
func Overrides(m1, m2 *MethodSig, origin Type) bool {
	if m1.Symbol.IsConstructor || m2.Symbol.IsConstructor {
		return false
	}

	m1Owner := m1.Declaring
	m2Owner := m2.Declaring

	if isOverridableIn(m2, m2Owner.Symbol(), m1Owner.Symbol()) && AsSuper(m1Owner, m2Owner.Symbol()) != nil {
		if isSubSigInOrigin(m1, m2, m1Owner) {
			return true
		}
	}

	originClass, ok := origin.(*ClassType)
	if !ok {
		return false
	}
	if m1.Symbol.IsAbstract() ||
		!(m2.Symbol.IsAbstract() || m2.Symbol.IsDefaultMethod()) ||
		!isOverridableIn(m2, m2Owner.Symbol(), originClass.Symbol()) ||
		!IsSubtype(origin, m2Owner, false) {
		return false
	}

	return isSubSigInOrigin(m1, m2, origin)
}

func isSubSigInOrigin(m1, m2 *MethodSig, origin Type) bool {
	var s1, s2 *MethodSig
	if originCt, ok := origin.(*ClassType); ok && IsRaw(originCt) {
		s1, s2 = m1.Erase(), m2.Erase()
	} else {
		sub := EmptySubst
		if originCt, ok := origin.(*ClassType); ok {
			sub = originCt.typeParamSubst()
		}
		s1 = &MethodSig{Declaring: m1.Declaring, Symbol: m1.Symbol, ParamTypes: substList(m1.ParamTypes, sub), ReturnType: Subst(m1.ReturnType, sub), ThrownTypes: substList(m1.ThrownTypes, sub)}
		s2 = &MethodSig{Declaring: m2.Declaring, Symbol: m2.Symbol, ParamTypes: substList(m2.ParamTypes, sub), ReturnType: Subst(m2.ReturnType, sub), ThrownTypes: substList(m2.ThrownTypes, sub)}
	}
	return IsSubSignature(s1, s2)
}

// isOverridableIn reports whether m (declared on declaring) can be
// overridden from origin, purely by access modifiers (JLS 8.4.6.1).
// Final-ness and staticness are not checked here.
func isOverridableIn(m *MethodSig, declaring, origin *ClassSymbol) bool {
	switch m.Symbol.Modifiers & accessModifiers {
	case Public:
		return true
	case Protected:
		return !origin.IsInterface()
	case 0:
		return declaring.PackageName == origin.PackageName && !origin.IsInterface()
	default:
		return false
	}
}
