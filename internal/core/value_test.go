package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	obj := NewOrderedObject()
	obj.Set("a", NewInt(1))
	original := NewObject(obj)

	clone := original.Clone()
	clone.SetKey("a", NewInt(99))

	orig, _ := original.Object()
	av, _ := orig.Get("a")
	n, _ := av.Int()
	require.Equal(t, int64(1), n, "original should be untouched")

	cl, _ := clone.Object()
	cv, _ := cl.Get("a")
	n2, _ := cv.Int()
	require.Equal(t, int64(99), n2, "clone should carry the mutation")
}

func TestOrderedObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewOrderedObject()
	obj.Set("z", NewInt(1))
	obj.Set("a", NewInt(2))
	obj.Set("m", NewInt(3))

	require.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestEqual(t *testing.T) {
	a := NewArray([]*Value{NewInt(1), NewString("x")})
	b := NewArray([]*Value{NewInt(1), NewString("x")})
	c := NewArray([]*Value{NewInt(1), NewString("y")})

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))
}

func TestIntFloatDistinguishable(t *testing.T) {
	i := NewInt(5)
	f := NewFloat(5.0)

	require.True(t, i.IsInt())
	require.False(t, f.IsInt())

	fi, _ := i.Float()
	ff, _ := f.Float()
	require.Equal(t, fi, ff)
}
