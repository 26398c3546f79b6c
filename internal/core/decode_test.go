package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePreservesKeyOrderAndNumericFidelity(t *testing.T) {
	v, err := Decode([]byte(`{"z":1,"a":2.5,"nested":{"b":true,"arr":[1,2,3]}}`))
	require.NoError(t, err)

	obj, ok := v.Object()
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "nested"}, obj.Keys())

	z, _ := obj.Get("z")
	require.True(t, z.IsInt())

	a, _ := obj.Get("a")
	require.False(t, a.IsInt())
}

func TestDecodeRoundTripsThroughEncode(t *testing.T) {
	raw := []byte(`{"store":{"name":"acme","count":3,"tags":["a","b"]}}`)
	v, err := Decode(raw)
	require.NoError(t, err)

	out, err := Encode(v)
	require.NoError(t, err)

	v2, err := Decode(out)
	require.NoError(t, err)
	require.True(t, Equal(v, v2))
}

func TestDecodeEmptyDocumentErrors(t *testing.T) {
	_, err := Decode([]byte(""))
	require.Error(t, err)
}
