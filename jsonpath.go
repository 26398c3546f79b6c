// Package jsonpath compiles JSONPath expressions and evaluates them against
// in-memory JSON documents, returning either a read-only set of matches or a
// mutated copy of the document. Document decode/encode is handled once per
// call via internal/core; the path engine itself never touches raw bytes.
// Paths use bracket JSONPath syntax ($.store.book[0].title,
// $..book[?(@.price<10)]).
package jsonpath

import (
	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
	"github.com/474420502/xjsonpath/internal/eval"
	"github.com/474420502/xjsonpath/internal/mutate"
	"github.com/474420502/xjsonpath/internal/parser"
	"github.com/474420502/xjsonpath/internal/xerr"
)

// ErrorKind and Error re-export the internal taxonomy so callers can branch
// on failure kind (var perr *jsonpath.Error; errors.As(err, &perr)) without reaching into
// an internal package.
type ErrorKind = xerr.Kind
type Error = xerr.Error

const (
	EmptyPath      = xerr.EmptyPath
	PathSyntax     = xerr.PathSyntax
	PathEof        = xerr.PathEof
	DocumentDecode = xerr.DocumentDecode
	DocumentEncode = xerr.DocumentEncode
	TypeConversion = xerr.TypeConversion
)

// Expr is a compiled JSONPath expression. It holds no document state and is
// safe to reuse (including concurrently) against any number of documents.
type Expr struct {
	root *ast.Node
}

// Compile parses path into a reusable Expr.
func Compile(path string) (*Expr, error) {
	root, err := parser.Parse(path)
	if err != nil {
		return nil, err
	}
	return &Expr{root: root}, nil
}

// MustCompile is like Compile but panics on error, for statically-known
// paths declared at package scope — the same idiom regexp.MustCompile uses.
func MustCompile(path string) *Expr {
	e, err := Compile(path)
	if err != nil {
		panic(err)
	}
	return e
}

// Select evaluates expr against document and returns the matched values as
// plain Go values (map[string]interface{}, []interface{}, string,
// int64/float64, bool, nil). Object key order is not preserved in this
// representation; use SelectAsStr when order-preserving output is needed.
func Select(expr *Expr, document []byte) ([]interface{}, error) {
	matches, err := selectMatches(expr, document)
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(matches))
	for i, m := range matches {
		out[i] = core.ToInterface(m.Value)
	}
	return out, nil
}

// SelectAsStr evaluates expr against document and serializes the matches as
// a JSON array, preserving object key order within each match.
func SelectAsStr(expr *Expr, document []byte) (string, error) {
	matches, err := selectMatches(expr, document)
	if err != nil {
		return "", err
	}
	values := make([]*core.Value, len(matches))
	for i, m := range matches {
		values[i] = m.Value
	}
	raw, err := core.Encode(core.NewArray(values))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SelectAs evaluates expr against document and schema-aware-decodes each
// match into T via json-iterator's reflection-based unmarshal.
func SelectAs[T any](expr *Expr, document []byte) ([]T, error) {
	matches, err := selectMatches(expr, document)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(matches))
	for i, m := range matches {
		if err := core.Unmarshal(m.Value, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Replace evaluates expr against document, and for every matched location
// calls fn with its current Go-native value. fn's second return value
// selects replace (true, with the new value) or delete (false). The
// original document is untouched; Replace returns a new, mutated document.
// A match at the document root itself ($) is skipped: fn is not called for
// it and the root is neither replaced nor deleted.
func Replace(expr *Expr, document []byte, fn func(current interface{}) (interface{}, bool)) ([]byte, error) {
	return ReplaceAll([]*Expr{expr}, document, fn)
}

// Delete is shorthand for Replace with a callback that always deletes.
func Delete(expr *Expr, document []byte) ([]byte, error) {
	return DeleteAll([]*Expr{expr}, document)
}

// ReplaceAll is the multi-expression variant of Replace: every location
// matched by any expression in exprs is visited once (the union of matches
// across the expressions).
func ReplaceAll(exprs []*Expr, document []byte, fn func(current interface{}) (interface{}, bool)) ([]byte, error) {
	doc, err := core.Decode(document)
	if err != nil {
		return nil, err
	}
	roots := make([]*ast.Node, len(exprs))
	for i, e := range exprs {
		roots[i] = e.root
	}
	mutated, err := mutate.Apply(roots, doc, mutate.ReplaceFunc(fn))
	if err != nil {
		return nil, err
	}
	return core.Encode(mutated)
}

// DeleteAll is the multi-expression variant of Delete.
func DeleteAll(exprs []*Expr, document []byte) ([]byte, error) {
	return ReplaceAll(exprs, document, func(interface{}) (interface{}, bool) { return nil, false })
}

func selectMatches(expr *Expr, document []byte) ([]eval.Match, error) {
	doc, err := core.Decode(document)
	if err != nil {
		return nil, err
	}
	return eval.Select(expr.root, doc), nil
}
