package filter

import (
	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
)

// Eval evaluates a compiled filter expression against one candidate value
// (bound to '@') and the document root (bound to '$'), returning whether the
// candidate passes. This is the function eval.KFilter steps call per array
// element / object value: a bracket filter enters each array/object frontier
// member and tests its children, not the frontier member itself — so in
// `$..book[?(@.isbn)]`, `@` ranges over each book, not over the `book` array
// as a whole.
func Eval(expr *ast.Node, candidate *core.Value, root *core.Value) bool {
	return evalNode(expr, candidate, root).truthy()
}

func evalNode(n *ast.Node, candidate *core.Value, root *core.Value) term {
	if n == nil {
		return literalBool(false)
	}
	switch n.Kind {
	case ast.KNumber:
		return literalNumber(n.Num)
	case ast.KString:
		return literalString(n.Str)
	case ast.KBool:
		return literalBool(n.Bool)
	case ast.KRelative:
		vs := resolveFrontier(n.Next, []*core.Value{candidate}, root)
		return scopedPathSet(vs, scopeRelative)
	case ast.KAbsolute:
		base := root
		if base == nil {
			base = candidate
		}
		vs := resolveFrontier(n.Next, []*core.Value{base}, root)
		return scopedPathSet(vs, scopeAbsolute)
	case ast.KBinOp:
		return evalBinOp(n, candidate, root)
	case ast.KIn:
		return evalIn(n, candidate, root)
	default:
		return literalBool(false)
	}
}

func evalBinOp(n *ast.Node, candidate *core.Value, root *core.Value) term {
	switch n.Op {
	case ast.OpAnd:
		left := evalNode(n.Left, candidate, root)
		if !left.truthy() {
			return literalBool(false)
		}
		right := evalNode(n.Right, candidate, root)
		return literalBool(right.truthy())
	case ast.OpOr:
		left := evalNode(n.Left, candidate, root)
		if left.truthy() {
			return literalBool(true)
		}
		right := evalNode(n.Right, candidate, root)
		return literalBool(right.truthy())
	default:
		left := evalNode(n.Left, candidate, root)
		right := evalNode(n.Right, candidate, root)
		return compare(n.Op, left, right)
	}
}

func evalIn(n *ast.Node, candidate *core.Value, root *core.Value) term {
	left := evalNode(n.Left, candidate, root)
	for _, litNode := range n.List {
		lit := evalNode(litNode, candidate, root)
		if compare(ast.OpEq, left, lit).truthy() {
			return literalBool(true)
		}
	}
	return literalBool(false)
}
