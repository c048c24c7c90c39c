package types

// Erase is the exposed-API name for Erasure (spec.md §6).
func Erase(t Type) Type { return Erasure(t) }

// AsList flattens t into its constituent types: an intersection's
// components, or a single-element list for anything else. Used by
// callers that want to iterate a type's conjuncts uniformly.
func AsList(t Type) []Type {
	if it, ok := t.(*Intersection); ok {
		return it.components()
	}
	return []Type{t}
}

// Accessible reports whether a member declared with the given
// modifiers on owner is visible from ctx, per JLS 6.6. arrayOwner marks
// a member of the synthetic array class (clone, length), always
// visible regardless of owner/ctx.
func Accessible(modifiers Modifiers, owner, ctx *ClassSymbol, arrayOwner bool) bool {
	if arrayOwner {
		return true
	}
	switch modifiers & accessModifiers {
	case Public:
		return true
	case Private:
		return ctx.NestRoot().Equal(owner.NestRoot())
	case Protected:
		return owner.PackageName == ctx.PackageName || isNonInterfaceSubclass(ctx, owner)
	default: // package-private
		return owner.PackageName == ctx.PackageName && !ctx.IsInterface()
	}
}

func isNonInterfaceSubclass(ctx, owner *ClassSymbol) bool {
	if ctx.IsInterface() {
		return false
	}
	for c := ctx.Superclass; c != nil; c = c.Symbol().Superclass {
		if c.Symbol().Equal(owner) {
			return true
		}
	}
	return false
}

// OverloadComparator selects the most specific of two applicable
// overloads, per the overload-resolution rules this package does not
// itself implement (spec.md §6, "consumed" collaborator).
type OverloadComparator interface {
	// MoreSpecific reports whether a is more specific than b.
	MoreSpecific(a, b *MethodSig) bool
}

// GetMethodsOf streams t's accessible methods named name, filtered to
// static or instance methods per staticOnly, viewed from ctx, and
// reduced to the most-specific overload per cmp.
func GetMethodsOf(t Type, name string, staticOnly bool, ctx *ClassSymbol, cmp OverloadComparator) []*MethodSig {
	_, isArray := t.(*ArrayType)
	var candidates []*MethodSig
	for _, super := range GetSuperTypeSet(t) {
		ct, ok := super.(*ClassType)
		if !ok {
			continue
		}
		for _, sym := range ct.symbol.Methods {
			if sym.Name != name || sym.IsConstructor || sym.IsStatic() != staticOnly {
				continue
			}
			if !Accessible(sym.Modifiers, ct.symbol, ctx, isArray) {
				continue
			}
			candidates = append(candidates, NewMethodSig(ct, sym))
		}
	}
	if cmp == nil || len(candidates) < 2 {
		return candidates
	}
	return MostSpecific(candidates, cmp)
}

// MostSpecific filters candidates down to those not dominated by any
// other candidate under cmp: m is kept unless some other candidate is
// strictly more specific than it.
func MostSpecific(candidates []*MethodSig, cmp OverloadComparator) []*MethodSig {
	var kept []*MethodSig
	for _, m := range candidates {
		dominated := false
		for _, other := range candidates {
			if other == m {
				continue
			}
			if cmp.MoreSpecific(other, m) && !cmp.MoreSpecific(m, other) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, m)
		}
	}
	return kept
}

// AccessibleMethodFilter reports whether m, declared on its Declaring
// type, is visible from ctx. Array methods are never represented as a
// MethodSig (their declaring ClassSymbol does not exist), so the
// synthetic array-owner exemption never applies here.
func AccessibleMethodFilter(m *MethodSig, ctx *ClassSymbol) bool {
	return Accessible(m.Symbol.Modifiers, m.Declaring.symbol, ctx, false)
}
