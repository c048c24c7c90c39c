package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubtype_Reflexive(t *testing.T) {
	terms := []Type{
		objectSentinel,
		&Primitive{kind: Int},
		stringType(),
		listOf(stringType()),
		NewArray(stringType()),
	}
	for _, term := range terms {
		assert.True(t, IsSubtype(term, term, false))
	}
}

func TestIsSubtype_EverythingConformsToObject(t *testing.T) {
	assert.True(t, IsSubtype(stringType(), objectSentinel, false))
	assert.True(t, IsSubtype(listOf(stringType()), objectSentinel, false))
	assert.False(t, IsSubtype(&Primitive{kind: Int}, objectSentinel, false), "primitives do not conform to Object")
}

func TestIsSubtype_NullConformsToEveryReferenceType(t *testing.T) {
	assert.True(t, IsSubtype(nullTypeSingleton, stringType(), false))
	assert.True(t, IsSubtype(nullTypeSingleton, listOf(stringType()), false))
	assert.False(t, IsSubtype(nullTypeSingleton, &Primitive{kind: Int}, false))
}

func TestIsSubtype_ClassHierarchy(t *testing.T) {
	assert.True(t, IsSubtype(arrayListOf(stringType()), listOf(stringType()), false))
	assert.True(t, IsSubtype(arrayListOf(stringType()), collectionOf(stringType()), false))
	assert.False(t, IsSubtype(listOf(stringType()), arrayListOf(stringType()), false))
	assert.False(t, IsSubtype(arrayListOf(stringType()), arrayListOf(integerType()), false))
}

func TestIsSubtype_WildcardContainment(t *testing.T) {
	// List<String> <: List<? extends Object>
	assert.True(t, IsSubtype(listOf(stringType()), listOf(NewUpperWildcard(objectSentinel)), false))
	// List<String> <: List<? extends String>
	assert.True(t, IsSubtype(listOf(stringType()), listOf(NewUpperWildcard(stringType())), false))
	// List<String> is not <: List<? extends Integer>
	assert.False(t, IsSubtype(listOf(stringType()), listOf(NewUpperWildcard(integerType())), false))
	// List<? extends String> is not <: List<String>
	assert.False(t, IsSubtype(listOf(NewUpperWildcard(stringType())), listOf(stringType()), false))
}

func TestIsSubtype_RawAndUnchecked(t *testing.T) {
	raw := NewClassType(listSym, nil)
	assert.True(t, IsSubtype(raw, listOf(stringType()), true), "raw to parameterised requires unchecked=true")
	assert.False(t, IsSubtype(raw, listOf(stringType()), false), "without unchecked, raw does not convert")
	assert.True(t, IsSubtype(listOf(stringType()), raw, false), "parameterised to raw is always fine")
}

func TestIsSubtype_SafeUnchecked_RequiresUnboundedWildcardArgs(t *testing.T) {
	raw := NewClassType(listSym, nil)
	target := listOf(unboundedWildcard)
	assert.True(t, IsSubtype(raw, target, true))
}

func TestIsSubtype_Array(t *testing.T) {
	assert.True(t, IsSubtype(NewArray(stringType()), NewArray(objectSentinel), false), "reference arrays are covariant")
	assert.True(t, IsSubtype(NewArray(stringType()), objectSentinel, false))
	assert.True(t, IsSubtype(NewArray(stringType()), cloneableSentinel, false))
	assert.True(t, IsSubtype(NewArray(stringType()), serializableSentinel, false))
	assert.False(t, IsSubtype(NewArray(&Primitive{kind: Int}), NewArray(&Primitive{kind: Long}), false), "primitive arrays are not covariant")
}

func TestIsSubtype_Primitive(t *testing.T) {
	assert.True(t, IsSubtype(&Primitive{kind: Int}, &Primitive{kind: Long}, false))
	assert.True(t, IsSubtype(&Primitive{kind: Byte}, &Primitive{kind: Double}, false))
	assert.False(t, IsSubtype(&Primitive{kind: Long}, &Primitive{kind: Int}, false))
	assert.False(t, IsSubtype(&Primitive{kind: Boolean}, &Primitive{kind: Int}, false))
}

func TestIsSubtype_UnresolvedPropagatesAsymmetrically(t *testing.T) {
	assert.True(t, IsSubtype(unresolvedTypeSentinel, stringType(), false))
	assert.True(t, IsSubtype(unresolvedTypeSentinel, integerType(), false))
}

func TestIsSubtype_InferenceVarAccretesBound(t *testing.T) {
	v := NewInferenceVar(1)
	assert.True(t, IsSubtype(stringType(), v, false))
	assert.Equal(t, []Type{stringType()}, v.Bounds(Lower))

	v2 := NewInferenceVar(2)
	assert.True(t, IsSubtype(v2, stringType(), false))
	assert.Equal(t, []Type{stringType()}, v2.Bounds(Upper))
}

func TestTypeArgContains(t *testing.T) {
	assert.True(t, TypeArgContains(stringType(), stringType()), "same type short-circuits")
	assert.True(t, TypeArgContains(NewUpperWildcard(objectSentinel), stringType()))
	assert.True(t, TypeArgContains(NewUpperWildcard(objectSentinel), integerType()))
	assert.True(t, TypeArgContains(NewLowerWildcard(stringType()), objectSentinel))
	assert.False(t, TypeArgContains(NewLowerWildcard(objectSentinel), stringType()))
}

