// Package filter evaluates a compiled filter-expression tree against a
// single candidate value. Comparator dispatch is a single ast.Op-indexed
// switch rather than one type per operator.
package filter

import "github.com/474420502/xjsonpath/internal/core"

// kind tags which of literal or path-set a term holds.
type kind int

const (
	kLiteral kind = iota
	kPathSet
)

type litKind int

const (
	litNumber litKind = iota
	litString
	litBool
)

// scope tags which root a path-set term was resolved from, needed to tell
// same-scope (@.a == @.b) from cross-scope (@.a == $.x) comparisons apart.
type scope int

const (
	scopeNone scope = iota
	scopeRelative
	scopeAbsolute
)

// term is the intermediate result of evaluating one side of a comparison:
// either a single literal or the set of values a (possibly empty) path
// produced against the current candidate/root.
type term struct {
	kind kind

	lk  litKind
	num float64
	str string
	bl  bool

	pathSet []*core.Value
	scope   scope
}

func literalNumber(n float64) term  { return term{kind: kLiteral, lk: litNumber, num: n} }
func literalString(s string) term   { return term{kind: kLiteral, lk: litString, str: s} }
func literalBool(b bool) term       { return term{kind: kLiteral, lk: litBool, bl: b} }
func pathSet(vs []*core.Value) term { return term{kind: kPathSet, pathSet: vs} }
func scopedPathSet(vs []*core.Value, sc scope) term {
	return term{kind: kPathSet, pathSet: vs, scope: sc}
}

// truthy reports whether t should be treated as "true" in a boolean context:
// a path-set term is truthy iff non-empty; a literal term is truthy per its
// own kind (number != 0, non-empty string, or the bool itself).
func (t term) truthy() bool {
	if t.kind == kPathSet {
		return len(t.pathSet) > 0
	}
	switch t.lk {
	case litNumber:
		return t.num != 0
	case litString:
		return t.str != ""
	case litBool:
		return t.bl
	default:
		return false
	}
}

// asLiteralValue converts a single core.Value into a literal term for
// comparison, or reports false if its kind has no literal counterpart
// (object/array/null never compare equal to anything under this model).
func asLiteralValue(v *core.Value) (term, bool) {
	switch v.Kind() {
	case core.Number:
		n, _ := v.Float()
		return literalNumber(n), true
	case core.String:
		s, _ := v.String()
		return literalString(s), true
	case core.Bool:
		b, _ := v.Bool()
		return literalBool(b), true
	default:
		return term{}, false
	}
}
