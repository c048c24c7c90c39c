package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentical_Reflexive(t *testing.T) {
	terms := []Type{
		objectSentinel,
		nullTypeSingleton,
		&Primitive{kind: Int},
		stringType(),
		listOf(stringType()),
		NewArray(stringType()),
		unboundedWildcard,
		NewIntersection(nil, []Type{listOf(stringType())}),
	}
	for _, term := range terms {
		assert.True(t, Identical(term, term, false), "expected %v to be identical to itself", term)
	}
}

func TestIdentical_Symmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Type
	}{
		{"same class type", listOf(stringType()), listOf(stringType())},
		{"different type args", listOf(stringType()), listOf(integerType())},
		{"primitive vs class", &Primitive{kind: Int}, stringType()},
		{"raw vs parameterised", NewClassType(listSym, nil), listOf(stringType())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Identical(tc.a, tc.b, false), Identical(tc.b, tc.a, false))
		})
	}
}

func TestIdentical_ClassType(t *testing.T) {
	assert.True(t, Identical(listOf(stringType()), listOf(stringType()), false))
	assert.False(t, Identical(listOf(stringType()), listOf(integerType()), false))
	assert.False(t, Identical(listOf(stringType()), collectionOf(stringType()), false))
	assert.False(t, Identical(NewClassType(listSym, nil), listOf(stringType()), false))
}

func TestIdentical_Wildcard(t *testing.T) {
	a := NewUpperWildcard(stringType())
	b := NewUpperWildcard(stringType())
	c := NewLowerWildcard(stringType())
	assert.True(t, Identical(a, b, false))
	assert.False(t, Identical(a, c, false))
}

func TestIdentical_PureMode_InferenceVarNeverEqualUnlessSamePointer(t *testing.T) {
	v1 := NewInferenceVar(1)
	v2 := NewInferenceVar(2)
	assert.False(t, Identical(v1, v2, false))
	assert.True(t, Identical(v1, v1, false))
	assert.False(t, Identical(v1, stringType(), false))
}

func TestIdentical_InferenceMode_AccretesBounds(t *testing.T) {
	v := NewInferenceVar(1)
	assert.True(t, Identical(v, stringType(), true))
	assert.Equal(t, []Type{stringType()}, v.Bounds(Eq))

	v2 := NewInferenceVar(2)
	assert.True(t, Identical(NewUpperWildcard(stringType()), v2, true), "operand order must not matter")
	assert.Equal(t, []Type{stringType()}, v2.Bounds(Upper))

	v3 := NewInferenceVar(3)
	assert.False(t, Identical(v3, &Primitive{kind: Int}, true), "never equal to a primitive")
}

func TestAreSameTypes(t *testing.T) {
	assert.True(t, AreSameTypes([]Type{stringType(), integerType()}, []Type{stringType(), integerType()}, false))
	assert.False(t, AreSameTypes([]Type{stringType()}, []Type{stringType(), integerType()}, false))
	assert.False(t, AreSameTypes([]Type{stringType()}, []Type{integerType()}, false))
}
