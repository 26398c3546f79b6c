// Package mutate implements the mutating selector: it collects the
// locations a read-only Select would match, then replaces or deletes them
// on a deep copy of the document, processing locations deepest-first (and,
// within a parent, highest-index-first for arrays) so that applying one
// mutation never invalidates the address of another still pending.
package mutate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/core"
	"github.com/474420502/xjsonpath/internal/eval"
)

// ReplaceFunc receives the current Go-native value at a matched location and
// returns its replacement. ok=false deletes the location instead (array
// deletion shifts subsequent indices down).
type ReplaceFunc func(current interface{}) (replacement interface{}, ok bool)

// Apply clones doc, collects the matches of every root in roots, applies fn
// to each distinct location (locations shared by more than one root are
// visited once), and returns the mutated clone.
func Apply(roots []*ast.Node, doc *core.Value, fn ReplaceFunc) (*core.Value, error) {
	clone := doc.Clone()

	seen := map[string]bool{}
	var locations [][]eval.Segment
	for _, root := range roots {
		for _, m := range eval.Select(root, doc) {
			key := pathKey(m.Path)
			if seen[key] {
				continue
			}
			seen[key] = true
			locations = append(locations, m.Path)
		}
	}

	sort.Slice(locations, func(i, j int) bool {
		return lessLocation(locations[i], locations[j])
	})

	for _, path := range locations {
		if len(path) == 0 {
			continue // the document root itself cannot be replaced or deleted in place
		}
		parent, seg, ok := navigate(clone, path)
		if !ok {
			continue
		}
		cur := currentValue(parent, seg)
		if cur == nil {
			continue
		}
		repl, keep := fn(core.ToInterface(cur))
		if !keep {
			deleteAt(parent, seg)
			continue
		}
		nv, err := core.FromInterface(repl)
		if err != nil {
			return nil, err
		}
		setAt(parent, seg, nv)
	}

	return clone, nil
}

// lessLocation sorts deepest paths first; among equal-depth paths, those
// whose final segment is an array index sort before those ending in a key,
// and higher indices sort first so deleting one doesn't shift a sibling
// still waiting to be mutated.
func lessLocation(a, b []eval.Segment) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	if len(a) == 0 {
		return false
	}
	la, lb := a[len(a)-1], b[len(b)-1]
	if la.IsKey != lb.IsKey {
		return !la.IsKey
	}
	if !la.IsKey {
		return la.Index > lb.Index
	}
	return false
}

func pathKey(path []eval.Segment) string {
	var sb strings.Builder
	for _, seg := range path {
		sb.WriteByte('/')
		if seg.IsKey {
			sb.WriteString(strconv.Quote(seg.Key))
		} else {
			sb.WriteString(strconv.Itoa(seg.Index))
		}
	}
	return sb.String()
}

// navigate walks path[:-1] from root and returns the parent container value
// and the final segment addressing the matched child within it.
func navigate(root *core.Value, path []eval.Segment) (*core.Value, eval.Segment, bool) {
	cur := root
	for _, seg := range path[:len(path)-1] {
		if seg.IsKey {
			obj, ok := cur.Object()
			if !ok {
				return nil, eval.Segment{}, false
			}
			child, ok := obj.Get(seg.Key)
			if !ok {
				return nil, eval.Segment{}, false
			}
			cur = child
		} else {
			arr, ok := cur.Array()
			if !ok || seg.Index < 0 || seg.Index >= len(arr) {
				return nil, eval.Segment{}, false
			}
			cur = arr[seg.Index]
		}
	}
	return cur, path[len(path)-1], true
}

func currentValue(parent *core.Value, seg eval.Segment) *core.Value {
	if seg.IsKey {
		obj, ok := parent.Object()
		if !ok {
			return nil
		}
		v, _ := obj.Get(seg.Key)
		return v
	}
	arr, ok := parent.Array()
	if !ok || seg.Index < 0 || seg.Index >= len(arr) {
		return nil
	}
	return arr[seg.Index]
}

func setAt(parent *core.Value, seg eval.Segment, nv *core.Value) {
	if seg.IsKey {
		parent.SetKey(seg.Key, nv)
	} else {
		parent.SetIndex(seg.Index, nv)
	}
}

func deleteAt(parent *core.Value, seg eval.Segment) {
	if seg.IsKey {
		parent.DeleteKey(seg.Key)
	} else {
		parent.DeleteIndex(seg.Index)
	}
}
