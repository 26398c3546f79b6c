// Package eval implements the read-only selector: it walks a compiled
// path-expression tree against a document and produces an ordered
// "frontier" of matches, each carrying the root-relative address (Path) the
// mutating selector in internal/mutate needs to locate it again after a
// deep copy.
package eval

import (
	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
	"github.com/474420502/xjsonpath/internal/filter"
)

// Segment is one step of a Match's root-relative address: either an object
// key or an array index.
type Segment struct {
	Key   string
	Index int
	IsKey bool
}

// Match is a single selected value together with the path that reaches it
// from the document root.
type Match struct {
	Value *core.Value
	Path  []Segment
}

func (m Match) withKey(key string, v *core.Value) Match {
	np := make([]Segment, len(m.Path)+1)
	copy(np, m.Path)
	np[len(m.Path)] = Segment{Key: key, IsKey: true}
	return Match{Value: v, Path: np}
}

func (m Match) withIndex(idx int, v *core.Value) Match {
	np := make([]Segment, len(m.Path)+1)
	copy(np, m.Path)
	np[len(m.Path)] = Segment{Index: idx, IsKey: false}
	return Match{Value: v, Path: np}
}

// Select evaluates root (an Absolute-rooted path-expression tree) against
// doc and returns the ordered set of matches.
func Select(root *ast.Node, doc *core.Value) []Match {
	frontier := []Match{{Value: doc}}
	return evalChain(root.Next, frontier, doc)
}

func evalChain(node *ast.Node, frontier []Match, root *core.Value) []Match {
	if node == nil {
		return frontier
	}
	return evalChain(node.Next, evalStep(node, frontier, root), root)
}

func evalStep(node *ast.Node, frontier []Match, root *core.Value) []Match {
	switch node.Kind {
	case ast.KChild:
		var out []Match
		for _, m := range frontier {
			obj, ok := m.Value.Object()
			if !ok {
				continue
			}
			for _, k := range node.Keys {
				if child, ok := obj.Get(k); ok {
					out = append(out, m.withKey(k, child))
				}
			}
		}
		return out
	case ast.KAll:
		var out []Match
		for _, m := range frontier {
			if arr, ok := m.Value.Array(); ok {
				for i, e := range arr {
					out = append(out, m.withIndex(i, e))
				}
			} else if obj, ok := m.Value.Object(); ok {
				obj.ForEach(func(k string, v *core.Value) bool {
					out = append(out, m.withKey(k, v))
					return true
				})
			}
		}
		return out
	case ast.KDescendant:
		return expandDescendants(frontier)
	case ast.KIndexUnion:
		var out []Match
		for _, idx := range node.Indices {
			for _, m := range frontier {
				arr, ok := m.Value.Array()
				if !ok {
					continue
				}
				L := len(arr)
				real := idx
				if real < 0 {
					real = L + real
				}
				if real < 0 || real >= L {
					continue
				}
				out = append(out, m.withIndex(real, arr[real]))
			}
		}
		return out
	case ast.KSlice:
		var out []Match
		for _, m := range frontier {
			arr, ok := m.Value.Array()
			if !ok {
				continue
			}
			L := len(arr)
			s := normalize(node.Start, 0, L)
			e := normalize(node.End, L, L)
			step := 1
			if node.Step != nil {
				step = *node.Step
			}
			for i := s; i < e; i += step {
				if i >= 0 && i < L {
					out = append(out, m.withIndex(i, arr[i]))
				}
			}
		}
		return out
	case ast.KFilter:
		var out []Match
		for _, m := range frontier {
			if arr, ok := m.Value.Array(); ok {
				for i, e := range arr {
					if filter.Eval(node.Filter, e, root) {
						out = append(out, m.withIndex(i, e))
					}
				}
			} else if obj, ok := m.Value.Object(); ok {
				obj.ForEach(func(k string, v *core.Value) bool {
					if filter.Eval(node.Filter, v, root) {
						out = append(out, m.withKey(k, v))
					}
					return true
				})
			}
		}
		return out
	default:
		return nil
	}
}

// expandDescendants returns the union of frontier with every transitive
// descendant, deduplicated by node identity (pointer equality) so that a
// key reachable through more than one path down the tree is only reported
// once.
func expandDescendants(frontier []Match) []Match {
	visited := map[*core.Value]bool{}
	var out []Match
	var walk func(m Match)
	walk = func(m Match) {
		if visited[m.Value] {
			return
		}
		visited[m.Value] = true
		out = append(out, m)
		if arr, ok := m.Value.Array(); ok {
			for i, e := range arr {
				walk(m.withIndex(i, e))
			}
		} else if obj, ok := m.Value.Object(); ok {
			obj.ForEach(func(k string, v *core.Value) bool {
				walk(m.withKey(k, v))
				return true
			})
		}
	}
	for _, m := range frontier {
		walk(m)
	}
	return out
}

func normalize(n *int, def, length int) int {
	if n == nil {
		if def > length {
			return length
		}
		if def < 0 {
			return 0
		}
		return def
	}
	v := *n
	if v >= 0 {
		if v > length {
			return length
		}
		return v
	}
	r := length + v
	if r < 0 {
		return 0
	}
	return r
}
