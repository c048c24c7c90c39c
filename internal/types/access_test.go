package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessible_Public(t *testing.T) {
	owner := ts.NewClassSymbol("a.Owner", "Owner", "a")
	ctx := ts.NewClassSymbol("b.Ctx", "Ctx", "b")
	assert.True(t, Accessible(Public, owner, ctx, false))
}

func TestAccessible_Private(t *testing.T) {
	owner := ts.NewClassSymbol("a.Owner", "Owner", "a")
	sameNest := ts.NewClassSymbol("a.Owner", "Owner", "a")
	other := ts.NewClassSymbol("a.Other", "Other", "a")
	assert.True(t, Accessible(Private, owner, sameNest, false))
	assert.False(t, Accessible(Private, owner, other, false))
}

func TestAccessible_Protected(t *testing.T) {
	owner := ts.NewClassSymbol("a.Owner", "Owner", "a")
	samePkg := ts.NewClassSymbol("a.Sibling", "Sibling", "a")
	assert.True(t, Accessible(Protected, owner, samePkg, false))

	sub := ts.NewClassSymbol("b.Sub", "Sub", "b")
	sub.Superclass = NewClassType(owner, nil)
	assert.True(t, Accessible(Protected, owner, sub, false))

	unrelated := ts.NewClassSymbol("b.Unrelated", "Unrelated", "b")
	assert.False(t, Accessible(Protected, owner, unrelated, false))
}

func TestAccessible_PackagePrivate(t *testing.T) {
	owner := ts.NewClassSymbol("a.Owner", "Owner", "a")
	samePkgClass := ts.NewClassSymbol("a.Sibling", "Sibling", "a")
	assert.True(t, Accessible(0, owner, samePkgClass, false))

	samePkgIface := ts.NewClassSymbol("a.Sibling2", "Sibling2", "a")
	samePkgIface.IsInterfaceFlag = true
	assert.False(t, Accessible(0, owner, samePkgIface, false), "package-private members are never visible from an interface context")

	otherPkg := ts.NewClassSymbol("b.Other", "Other", "b")
	assert.False(t, Accessible(0, owner, otherPkg, false))
}

func TestAccessible_ArrayOwnerAlwaysVisible(t *testing.T) {
	owner := ts.NewClassSymbol("a.Owner", "Owner", "a")
	ctx := ts.NewClassSymbol("b.Ctx", "Ctx", "b")
	assert.True(t, Accessible(0, owner, ctx, true))
}

func TestErase(t *testing.T) {
	got := Erase(arrayListOf(stringType()))
	assert.True(t, Identical(got, NewClassType(arrayListSym, nil), false))
}

func TestAsList(t *testing.T) {
	single := AsList(stringType())
	assert.Len(t, single, 1)

	it := NewIntersection(nil, []Type{
		NewClassType(comparableSym, []Type{stringType()}),
		NewClassType(comparatorSym, []Type{stringType()}),
	})
	parts := AsList(it)
	assert.Len(t, parts, 2)
}

type firstIsMoreSpecific struct{ preferred *MethodSig }

func (c firstIsMoreSpecific) MoreSpecific(a, b *MethodSig) bool { return a == c.preferred }

func TestGetMethodsOf(t *testing.T) {
	ctx := ts.NewClassSymbol("java.util", "Ctx", "java.util")
	got := GetMethodsOf(NewClassType(comparatorSym, []Type{stringType()}), "compare", false, ctx, nil)
	assert.Len(t, got, 1)
	assert.Equal(t, "compare", got[0].Name())
}

func TestGetMethodsOf_StaticFlagFilters(t *testing.T) {
	ctx := ts.NewClassSymbol("java.util", "Ctx", "java.util")
	got := GetMethodsOf(NewClassType(comparatorSym, []Type{stringType()}), "compare", true, ctx, nil)
	assert.Empty(t, got)
}

func TestGetMethodsOf_InaccessibleExcluded(t *testing.T) {
	priv := newInterface("test.Hidden", []string{"T"})
	priv.Methods = []*MethodSymbol{
		{Name: "hidden", Modifiers: Private, EnclosingClass: priv, ReturnType: &Primitive{kind: Int}},
	}
	ctx := ts.NewClassSymbol("other.Ctx", "Ctx", "other")
	got := GetMethodsOf(NewClassType(priv, []Type{stringType()}), "hidden", false, ctx, nil)
	assert.Empty(t, got)
}

func TestMostSpecific(t *testing.T) {
	a := &MethodSig{Symbol: &MethodSymbol{Name: "m"}}
	b := &MethodSig{Symbol: &MethodSymbol{Name: "m"}}
	kept := MostSpecific([]*MethodSig{a, b}, firstIsMoreSpecific{preferred: a})
	assert.Equal(t, []*MethodSig{a}, kept)
}

func TestAccessibleMethodFilter(t *testing.T) {
	m := NewMethodSig(NewClassType(comparatorSym, []Type{stringType()}), comparatorSym.Methods[0])
	ctx := ts.NewClassSymbol("other.Ctx", "Ctx", "other")
	assert.True(t, AccessibleMethodFilter(m, ctx), "compare is public")
}
