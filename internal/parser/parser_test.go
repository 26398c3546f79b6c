package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/474420502/xjsonpath/internal/ast"
)

func TestParseEmptyPathErrors(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
}

func TestParseMustStartWithDollar(t *testing.T) {
	_, err := Parse("store.book")
	require.Error(t, err)
}

func TestParseDotChildChain(t *testing.T) {
	root, err := Parse("$.store.book")
	require.NoError(t, err)
	require.Equal(t, ast.KAbsolute, root.Kind)
	require.NotNil(t, root.Next)
	require.Equal(t, ast.KChild, root.Next.Kind)
	require.Equal(t, []string{"store"}, root.Next.Keys)
	require.Equal(t, ast.KChild, root.Next.Next.Kind)
	require.Equal(t, []string{"book"}, root.Next.Next.Keys)
	require.Nil(t, root.Next.Next.Next)
}

func TestParseWildcardAndDescendant(t *testing.T) {
	root, err := Parse("$.store.*")
	require.NoError(t, err)
	require.Equal(t, ast.KAll, root.Next.Next.Kind)

	root2, err := Parse("$..price")
	require.NoError(t, err)
	require.Equal(t, ast.KDescendant, root2.Next.Kind)
	require.Equal(t, ast.KChild, root2.Next.Next.Kind)
	require.Equal(t, []string{"price"}, root2.Next.Next.Keys)
}

func TestParseBracketIndexUnionAndSlice(t *testing.T) {
	root, err := Parse("$[0,2,-1]")
	require.NoError(t, err)
	require.Equal(t, ast.KIndexUnion, root.Next.Kind)
	require.Equal(t, []int{0, 2, -1}, root.Next.Indices)

	root2, err := Parse("$[1:5:2]")
	require.NoError(t, err)
	require.Equal(t, ast.KSlice, root2.Next.Kind)
	require.Equal(t, 1, *root2.Next.Start)
	require.Equal(t, 5, *root2.Next.End)
	require.Equal(t, 2, *root2.Next.Step)

	root3, err := Parse("$[:]")
	require.NoError(t, err)
	require.Nil(t, root3.Next.Start)
	require.Nil(t, root3.Next.End)
	require.Nil(t, root3.Next.Step)
}

func TestParseNonPositiveSliceStepErrors(t *testing.T) {
	_, err := Parse("$[::0]")
	require.Error(t, err)
	_, err = Parse("$[::-1]")
	require.Error(t, err)
}

func TestParseQuotedChildList(t *testing.T) {
	root, err := Parse(`$["a","b"]`)
	require.NoError(t, err)
	require.Equal(t, ast.KChild, root.Next.Kind)
	require.Equal(t, []string{"a", "b"}, root.Next.Keys)
}

func TestParseFilterPrecedence(t *testing.T) {
	// '&&' binds tighter than '||': a || (b && c)
	root, err := Parse(`$[?(@.a==1 || @.b==2 && @.c==3)]`)
	require.NoError(t, err)
	filterNode := root.Next
	require.Equal(t, ast.KFilter, filterNode.Kind)
	expr := filterNode.Filter
	require.Equal(t, ast.OpOr, expr.Op)
	require.Equal(t, ast.OpEq, expr.Left.Op)
	require.Equal(t, ast.OpAnd, expr.Right.Op)
}

func TestParseComparisonsDoNotChain(t *testing.T) {
	root, err := Parse(`$[?(@.a < @.b)]`)
	require.NoError(t, err)
	expr := root.Next.Filter
	require.Equal(t, ast.OpLt, expr.Op)
	require.Equal(t, ast.KRelative, expr.Left.Kind)
	require.Equal(t, ast.KRelative, expr.Right.Kind)

	_, err = Parse(`$[?(@.a < @.b < @.c)]`)
	require.Error(t, err)
}

func TestParseInOperator(t *testing.T) {
	root, err := Parse(`$[?(@.category in ["fiction","poetry"])]`)
	require.NoError(t, err)
	expr := root.Next.Filter
	require.Equal(t, ast.KIn, expr.Kind)
	require.Len(t, expr.List, 2)
}

func TestParseNumberLiteralWithFraction(t *testing.T) {
	root, err := Parse(`$[?(@.price < 10.5)]`)
	require.NoError(t, err)
	expr := root.Next.Filter
	require.Equal(t, ast.KNumber, expr.Right.Kind)
	require.Equal(t, 10.5, expr.Right.Num)
}

func TestParseTrailingGarbageErrors(t *testing.T) {
	_, err := Parse("$.a)")
	require.Error(t, err)
}
