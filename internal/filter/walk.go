package filter

import (
	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
)

// resolveFrontier walks a path-expression chain over plain values, with no
// location tracking — a separate, self-contained stepper from the
// top-level selector in internal/eval, which calls into this package to
// evaluate KFilter steps and so cannot itself be called back into without
// an import cycle.
func resolveFrontier(node *ast.Node, frontier []*core.Value, root *core.Value) []*core.Value {
	if node == nil {
		return frontier
	}
	return resolveFrontier(node.Next, stepFrontier(node, frontier, root), root)
}

func stepFrontier(node *ast.Node, frontier []*core.Value, root *core.Value) []*core.Value {
	switch node.Kind {
	case ast.KChild:
		var out []*core.Value
		for _, v := range frontier {
			obj, ok := v.Object()
			if !ok {
				continue
			}
			for _, k := range node.Keys {
				if child, ok := obj.Get(k); ok {
					out = append(out, child)
				}
			}
		}
		return out
	case ast.KAll:
		var out []*core.Value
		for _, v := range frontier {
			if arr, ok := v.Array(); ok {
				out = append(out, arr...)
			} else if obj, ok := v.Object(); ok {
				obj.ForEach(func(_ string, cv *core.Value) bool {
					out = append(out, cv)
					return true
				})
			}
		}
		return out
	case ast.KDescendant:
		visited := map[*core.Value]bool{}
		var out []*core.Value
		var walk func(v *core.Value)
		walk = func(v *core.Value) {
			if visited[v] {
				return
			}
			visited[v] = true
			out = append(out, v)
			if arr, ok := v.Array(); ok {
				for _, e := range arr {
					walk(e)
				}
			} else if obj, ok := v.Object(); ok {
				obj.ForEach(func(_ string, cv *core.Value) bool {
					walk(cv)
					return true
				})
			}
		}
		for _, v := range frontier {
			walk(v)
		}
		return out
	case ast.KIndexUnion:
		var out []*core.Value
		for _, idx := range node.Indices {
			for _, v := range frontier {
				arr, ok := v.Array()
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
				out = append(out, arr[real])
			}
		}
		return out
	case ast.KSlice:
		var out []*core.Value
		for _, v := range frontier {
			arr, ok := v.Array()
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
					out = append(out, arr[i])
				}
			}
		}
		return out
	case ast.KFilter:
		var out []*core.Value
		for _, v := range frontier {
			if arr, ok := v.Array(); ok {
				for _, e := range arr {
					if Eval(node.Filter, e, root) {
						out = append(out, e)
					}
				}
			} else if obj, ok := v.Object(); ok {
				obj.ForEach(func(_ string, cv *core.Value) bool {
					if Eval(node.Filter, cv, root) {
						out = append(out, cv)
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
