package jsonpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const bookstore = `{
	"store": {
		"book": [
			{"category":"reference","author":"Nigel Rees","title":"Sayings of the Century","price":8.95},
			{"category":"fiction","author":"Evelyn Waugh","title":"Sword of Honour","price":12.99},
			{"category":"fiction","author":"Herman Melville","title":"Moby Dick","isbn":"0-553-21311-3","price":8.99},
			{"category":"fiction","author":"J. R. R. Tolkien","title":"The Lord of the Rings","isbn":"0-395-19395-8","price":22.99}
		],
		"bicycle": {"color":"red","price":19.95}
	}
}`

func TestEndToEndAllAuthorsViaChildWildcard(t *testing.T) {
	expr := MustCompile("$.store.book[*].author")
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Equal(t, []interface{}{
		"Nigel Rees", "Evelyn Waugh", "Herman Melville", "J. R. R. Tolkien",
	}, out)
}

func TestEndToEndAllAuthorsViaDescendant(t *testing.T) {
	expr := MustCompile("$..author")
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 4)
}

func TestEndToEndStoreWildcardTopLevel(t *testing.T) {
	expr := MustCompile("$.store.*")
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 2) // the book array and the bicycle object
}

func TestEndToEndAllPricesDescendant(t *testing.T) {
	expr := MustCompile("$..price")
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 5) // 4 books + 1 bicycle
}

func TestEndToEndFilterByExistingField(t *testing.T) {
	expr := MustCompile("$..book[?(@.isbn)]")
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestEndToEndFilterByCompoundCondition(t *testing.T) {
	expr := MustCompile(`$..book[?(@.price<10 && @.category=="fiction")]`)
	out, err := Select(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 1)
	book := out[0].(map[string]interface{})
	require.Equal(t, "Moby Dick", book["title"])
}

func TestEndToEndReplaceAppliesDiscount(t *testing.T) {
	expr := MustCompile("$..price")
	out, err := Replace(expr, []byte(bookstore), func(cur interface{}) (interface{}, bool) {
		price := cur.(float64)
		return price * 0.9, true
	})
	require.NoError(t, err)

	selectExpr := MustCompile("$..price")
	prices, err := Select(selectExpr, out)
	require.NoError(t, err)
	require.Len(t, prices, 5)
	require.InDelta(t, 8.95*0.9, prices[0].(float64), 1e-9)
	for _, p := range prices {
		f := p.(float64)
		require.Less(t, f, 23.0)
	}

	// the original input must be untouched (purity).
	origPrices, err := Select(selectExpr, []byte(bookstore))
	require.NoError(t, err)
	firstOrig := origPrices[0].(float64)
	require.Equal(t, 8.95, firstOrig)
}

func TestEndToEndDeleteRemovesIsbn(t *testing.T) {
	expr := MustCompile("$..book[?(@.isbn)].isbn")
	out, err := Delete(expr, []byte(bookstore))
	require.NoError(t, err)

	selectExpr := MustCompile("$..isbn")
	remaining, err := Select(selectExpr, out)
	require.NoError(t, err)
	require.Len(t, remaining, 0)
}

func TestReusabilityAcrossDocuments(t *testing.T) {
	expr := MustCompile("$.a")
	out1, err := Select(expr, []byte(`{"a":1}`))
	require.NoError(t, err)
	out2, err := Select(expr, []byte(`{"a":2}`))
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(1)}, out1)
	require.Equal(t, []interface{}{int64(2)}, out2)
}

func TestSelectAsStrPreservesKeyOrder(t *testing.T) {
	expr := MustCompile("$.store.bicycle")
	s, err := SelectAsStr(expr, []byte(bookstore))
	require.NoError(t, err)
	require.Contains(t, s, `"color":"red"`)
	require.Contains(t, s, `"price":19.95`)
	require.Less(t, strings.Index(s, `"color"`), strings.Index(s, `"price"`))
}

type bicycle struct {
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

func TestSelectAsTypeDirectedDeserialize(t *testing.T) {
	expr := MustCompile("$.store.bicycle")
	out, err := SelectAs[bicycle](expr, []byte(bookstore))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "red", out[0].Color)
	require.Equal(t, 19.95, out[0].Price)
}

func TestCompileInvalidPathReturnsPathSyntaxError(t *testing.T) {
	_, err := Compile("$.store.")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, PathSyntax, perr.Kind)
}

func TestMustCompilePanicsOnInvalidPath(t *testing.T) {
	require.Panics(t, func() {
		MustCompile("not-a-path")
	})
}
