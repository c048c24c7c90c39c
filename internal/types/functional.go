package types

import "github.com/sorrel-lang/jtypes/internal/tlog"

var functionalLogger = tlog.Section("functional")

// objectMethodSigs is the fixed shape of java.lang.Object's public
// instance methods, consulted by isNotDeclaredInClassObject. This
// package never loads java.lang.Object as a real ClassSymbol (per
// spec.md's exclusion of the implicit java.lang auto-import table), so
// the comparison below is by name and arity rather than full
// signature -- the closest analogue available without a real Object
// symbol to stream methods from.
var objectMethodSigs = map[string][]int{
	"equals":     {1},
	"hashCode":   {0},
	"toString":   {0},
	"getClass":   {0},
	"notify":     {0},
	"notifyAll":  {0},
	"wait":       {0, 1, 2},
}

// isNotDeclaredInClassObject excludes an interface's abstract method
// from SAM consideration when Object already declares a public method
// of the same name and arity (equals, hashCode, toString, ...): such a
// method is never itself a functional interface's single method.
func isNotDeclaredInClassObject(m *MethodSig) bool {
	arities, known := objectMethodSigs[m.Name()]
	if !known {
		return true
	}
	for _, a := range arities {
		if a == m.Arity() {
			return false
		}
	}
	return true
}

// NonWildcardParameterization computes the type used in SAM lookup for
// a parameterised type with wildcard arguments (JLS 9.9): each wildcard
// is replaced by its bound, or by the greatest lower bound of its bound
// and the formal's declared bound for an upper wildcard. Returns nil
// (not expressible as a single parameterisation) when a formal's bound
// mentions one of the type's own type parameters -- an F-bound makes
// the substitution self-referential in a way a single wildcard bound
// cannot resolve.
func NonWildcardParameterization(t *ClassType) *ClassType {
	hasWildcard := false
	for _, a := range t.typeArgs {
		if _, ok := a.(*Wildcard); ok {
			hasWildcard = true
			break
		}
	}
	if !hasWildcard {
		return t
	}

	formals := t.FormalTypeParams()
	newArgs := make([]Type, len(t.typeArgs))
	copy(newArgs, t.typeArgs)

	for i, a := range t.typeArgs {
		w, ok := a.(*Wildcard)
		if !ok {
			continue
		}
		bi := formals[i].upper
		if mentionsAnyTvar(bi, formals) {
			return nil
		}
		switch {
		case w.isUnbounded():
			newArgs[i] = bi
		case w.IsLowerBound():
			newArgs[i] = w.bound
		default:
			newArgs[i] = glbOf(w.upperBound(), bi)
		}
	}
	return t.WithTypeArguments(newArgs)
}

// FindFunctionalInterfaceMethod resolves candidateSam's single abstract
// method per JLS 9.9, or nil if candidateSam is not a functional
// interface type. A parameterised type is first reduced to its
// non-wildcard parameterisation; a raw type resolves against its
// generic declaration's function type and the result is erased back.
func FindFunctionalInterfaceMethod(candidateSam Type) *MethodSig {
	ct, ok := candidateSam.(*ClassType)
	if !ok {
		return nil
	}
	if IsRaw(ct) {
		generic := NewClassType(ct.symbol, typeVarsAsArgs(ct.symbol.FormalTypeParams))
		m := findFunctionTypeImpl(generic)
		if m == nil {
			return nil
		}
		return m.Erase()
	}
	if IsParameterized(ct) {
		nonWild := NonWildcardParameterization(ct)
		if nonWild == nil {
			return nil
		}
		return findFunctionTypeImpl(nonWild)
	}
	return findFunctionTypeImpl(ct)
}

func typeVarsAsArgs(tvs []*TypeVar) []Type {
	args := make([]Type, len(tvs))
	for i, v := range tvs {
		args[i] = v
	}
	return args
}

func findFunctionTypeImpl(candidateSam *ClassType) *MethodSig {
	if candidateSam == nil || !candidateSam.symbol.IsInterface() || candidateSam.symbol.IsAnnotation() {
		return nil
	}

	var candidates []*MethodSig
	for _, t := range GetSuperTypeSet(candidateSam) {
		ct, ok := t.(*ClassType)
		if !ok || !ct.symbol.IsInterface() {
			continue
		}
		for _, sym := range ct.symbol.Methods {
			if !sym.IsAbstract() || sym.IsStatic() {
				continue
			}
			m := NewMethodSig(ct, sym)
			if isNotDeclaredInClassObject(m) {
				candidates = append(candidates, m)
			}
		}
	}
	if len(candidates) == 0 {
		functionalLogger.Debug("no abstract methods found", "type", candidateSam)
		return nil
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	functionalLogger.Debug("multiple SAM candidates", "type", candidateSam, "count", len(candidates))

	var best *MethodSig
	for _, cand := range candidates {
		compatible := true
		for _, other := range candidates {
			if other == cand {
				continue
			}
			if !IsSubSignature(cand, other) || !IsReturnTypeSubstitutable(cand, other) {
				compatible = false
				break
			}
		}
		if !compatible {
			continue
		}
		if best == nil || IsSubtype(cand.ReturnType, best.ReturnType, false) {
			best = cand
		}
	}
	if best == nil {
		functionalLogger.Debug("no candidate dominates the others", "type", candidateSam)
	}
	return best
}
