package mutate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
	"github.com/474420502/xjsonpath/internal/parser"
)

func parse(t *testing.T, path string) *ast.Node {
	t.Helper()
	n, err := parser.Parse(path)
	require.NoError(t, err)
	return n
}

func TestReplaceDoesNotMutateOriginal(t *testing.T) {
	doc, err := core.Decode([]byte(`{"a":{"b":1}}`))
	require.NoError(t, err)

	root := parse(t, "$.a.b")
	mutated, err := Apply([]*ast.Node{root}, doc, func(cur interface{}) (interface{}, bool) {
		return 99, true
	})
	require.NoError(t, err)

	origObj, _ := doc.Object()
	origA, _ := origObj.Get("a")
	origAObj, _ := origA.Object()
	origB, _ := origAObj.Get("b")
	n, _ := origB.Int()
	require.Equal(t, int64(1), n, "original document must be untouched")

	mutObj, _ := mutated.Object()
	mutA, _ := mutObj.Get("a")
	mutAObj, _ := mutA.Object()
	mutB, _ := mutAObj.Get("b")
	n2, _ := mutB.Int()
	require.Equal(t, int64(99), n2)
}

func TestDeleteShiftsArrayIndices(t *testing.T) {
	doc, err := core.Decode([]byte(`[10,20,30,40]`))
	require.NoError(t, err)

	root := parse(t, "$[1,2]")
	mutated, err := Apply([]*ast.Node{root}, doc, func(interface{}) (interface{}, bool) {
		return nil, false
	})
	require.NoError(t, err)

	arr, _ := mutated.Array()
	require.Len(t, arr, 2)
	n0, _ := arr[0].Int()
	n1, _ := arr[1].Int()
	require.Equal(t, int64(10), n0)
	require.Equal(t, int64(40), n1)
}

func TestMultiExpressionUnion(t *testing.T) {
	doc, err := core.Decode([]byte(`{"a":1,"b":2,"c":3}`))
	require.NoError(t, err)

	rootA := parse(t, "$.a")
	rootB := parse(t, "$.b")
	mutated, err := Apply([]*ast.Node{rootA, rootB}, doc, func(interface{}) (interface{}, bool) {
		return nil, false
	})
	require.NoError(t, err)

	obj, _ := mutated.Object()
	require.Equal(t, 1, obj.Len())
	_, hasC := obj.Get("c")
	require.True(t, hasC)
}
