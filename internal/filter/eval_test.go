package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/474420502/xjsonpath/internal/core"
	"github.com/474420502/xjsonpath/internal/parser"
)

func TestDefaultOnKindMismatch(t *testing.T) {
	doc, err := core.Decode([]byte(`{"a":"x","b":1}`))
	require.NoError(t, err)

	root, err := parser.Parse(`$[?(@.a==@.b)]`)
	require.NoError(t, err)

	require.False(t, Eval(root.Next.Filter, doc, doc), "Eq on kind mismatch should default false")

	root2, _ := parser.Parse(`$[?(@.a!=@.b)]`)
	require.True(t, Eval(root2.Next.Filter, doc, doc), "Ne on kind mismatch should default true")
}

func TestLiteralComparison(t *testing.T) {
	doc, err := core.Decode([]byte(`{"price":8}`))
	require.NoError(t, err)

	root, _ := parser.Parse(`$[?(@.price<10)]`)
	require.True(t, Eval(root.Next.Filter, doc, doc))

	root2, _ := parser.Parse(`$[?(@.price>10)]`)
	require.False(t, Eval(root2.Next.Filter, doc, doc))
}

func TestPathSetAgainstLiteral(t *testing.T) {
	doc, err := core.Decode([]byte(`{"tags":["a","b","c"]}`))
	require.NoError(t, err)

	root, _ := parser.Parse(`$[?(@.tags[*]=="b")]`)
	require.True(t, Eval(root.Next.Filter, doc, doc), "path-set should match if any element equals the literal")

	root2, _ := parser.Parse(`$[?(@.tags[*]=="z")]`)
	require.False(t, Eval(root2.Next.Filter, doc, doc))
}

func TestAndOrShortCircuitAndMonotonicity(t *testing.T) {
	doc, err := core.Decode([]byte(`{"price":8,"category":"fiction"}`))
	require.NoError(t, err)

	root, _ := parser.Parse(`$[?(@.price<10 && @.category=="fiction")]`)
	require.True(t, Eval(root.Next.Filter, doc, doc))

	root2, _ := parser.Parse(`$[?(@.price<10 && true)]`)
	require.True(t, Eval(root2.Next.Filter, doc, doc), "&& true must be a no-op")

	root3, _ := parser.Parse(`$[?(@.price>100 || false)]`)
	require.False(t, Eval(root3.Next.Filter, doc, doc), "|| false must be a no-op")
}

func TestBareTruthinessTest(t *testing.T) {
	docWith, _ := core.Decode([]byte(`{"isbn":"123"}`))
	docWithout, _ := core.Decode([]byte(`{"title":"x"}`))

	root, _ := parser.Parse(`$[?(@.isbn)]`)
	require.True(t, Eval(root.Next.Filter, docWith, docWith))
	require.False(t, Eval(root.Next.Filter, docWithout, docWithout))
}

func TestInOperator(t *testing.T) {
	doc, err := core.Decode([]byte(`{"category":"fiction"}`))
	require.NoError(t, err)

	root, _ := parser.Parse(`$[?(@.category in ["fiction","poetry"])]`)
	require.True(t, Eval(root.Next.Filter, doc, doc))

	root2, _ := parser.Parse(`$[?(@.category in ["tech"])]`)
	require.False(t, Eval(root2.Next.Filter, doc, doc))
}
