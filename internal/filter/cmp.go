package filter

import (
	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
)

// defaultFor reports the result a comparator falls back to when its
// operands have mismatched kinds: every comparator defaults to false except
// Ne, which defaults to true.
func defaultFor(op ast.Op) bool {
	return op == ast.OpNe
}

func compareLiteralLiteral(op ast.Op, l, r term) bool {
	def := defaultFor(op)
	if l.kind != kLiteral || r.kind != kLiteral || l.lk != r.lk {
		return def
	}
	switch l.lk {
	case litNumber:
		return cmpFloat(op, l.num, r.num)
	case litString:
		return cmpString(op, l.str, r.str)
	case litBool:
		return cmpBool(op, l.bl, r.bl)
	default:
		return def
	}
}

func cmpFloat(op ast.Op, a, b float64) bool {
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNe:
		return a != b
	case ast.OpLt:
		return a < b
	case ast.OpLe:
		return a <= b
	case ast.OpGt:
		return a > b
	case ast.OpGe:
		return a >= b
	default:
		return false
	}
}

func cmpString(op ast.Op, a, b string) bool {
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNe:
		return a != b
	case ast.OpLt:
		return a < b
	case ast.OpLe:
		return a <= b
	case ast.OpGt:
		return a > b
	case ast.OpGe:
		return a >= b
	default:
		return false
	}
}

func cmpBool(op ast.Op, a, b bool) bool {
	ai, bi := 0, 0
	if a {
		ai = 1
	}
	if b {
		bi = 1
	}
	switch op {
	case ast.OpEq:
		return a == b
	case ast.OpNe:
		return a != b
	case ast.OpLt:
		return ai < bi
	case ast.OpLe:
		return ai <= bi
	case ast.OpGt:
		return ai > bi
	case ast.OpGe:
		return ai >= bi
	default:
		return false
	}
}

func invertOp(op ast.Op) ast.Op {
	switch op {
	case ast.OpLt:
		return ast.OpGt
	case ast.OpLe:
		return ast.OpGe
	case ast.OpGt:
		return ast.OpLt
	case ast.OpGe:
		return ast.OpLe
	default:
		return op // Eq/Ne are symmetric
	}
}

// compare implements the three comparison shapes a filter operand pair can
// take:
//  1. literal ⊗ literal: compareLiteralLiteral.
//  2. path-set ⊗ literal: filter the path-set's elements, keep those that
//     compare true when coerced to a literal; truthy iff non-empty.
//  3. path-set ⊗ path-set: same-scope (both @ or both $) compares via
//     existential cross-product; differing scope compares by corresponding
//     index (zip), since there's no shared iteration frame to cross-product
//     over in that case.
func compare(op ast.Op, left, right term) term {
	switch {
	case left.kind == kLiteral && right.kind == kLiteral:
		return literalBool(compareLiteralLiteral(op, left, right))
	case left.kind == kPathSet && right.kind == kLiteral:
		return comparePathLiteral(op, left, right)
	case left.kind == kLiteral && right.kind == kPathSet:
		return comparePathLiteral(invertOp(op), right, left)
	default:
		return comparePathPath(op, left, right)
	}
}

func comparePathLiteral(op ast.Op, ps, lit term) term {
	var matched []*core.Value
	for _, v := range ps.pathSet {
		lv, ok := asLiteralValue(v)
		if !ok {
			continue
		}
		if compareLiteralLiteral(op, lv, lit) {
			matched = append(matched, v)
		}
	}
	return pathSet(matched)
}

func comparePathPath(op ast.Op, left, right term) term {
	if left.scope == right.scope {
		for _, lv := range left.pathSet {
			llit, ok := asLiteralValue(lv)
			if !ok {
				continue
			}
			for _, rv := range right.pathSet {
				rlit, ok2 := asLiteralValue(rv)
				if ok2 && compareLiteralLiteral(op, llit, rlit) {
					return pathSet(left.pathSet)
				}
			}
		}
		return pathSet(nil)
	}

	n := len(left.pathSet)
	if len(right.pathSet) < n {
		n = len(right.pathSet)
	}
	var matched []*core.Value
	for i := 0; i < n; i++ {
		llit, ok := asLiteralValue(left.pathSet[i])
		rlit, ok2 := asLiteralValue(right.pathSet[i])
		if ok && ok2 && compareLiteralLiteral(op, llit, rlit) {
			matched = append(matched, left.pathSet[i])
		}
	}
	return pathSet(matched)
}
