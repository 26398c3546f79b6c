package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedObject is a JSON object that remembers key insertion order; a plain
// Go map can't carry that, so object values are backed by this instead.
type OrderedObject struct {
	m *orderedmap.OrderedMap[string, *Value]
}

func NewOrderedObject() *OrderedObject {
	return &OrderedObject{m: orderedmap.New[string, *Value]()}
}

func (o *OrderedObject) Set(key string, v *Value) { o.m.Set(key, v) }

func (o *OrderedObject) Get(key string) (*Value, bool) { return o.m.Get(key) }

func (o *OrderedObject) Delete(key string) { o.m.Delete(key) }

func (o *OrderedObject) Len() int { return o.m.Len() }

// Keys returns the object's keys in insertion order.
func (o *OrderedObject) Keys() []string {
	keys := make([]string, 0, o.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// ForEach walks entries in insertion order, stopping early if fn returns false.
func (o *OrderedObject) ForEach(fn func(key string, v *Value) bool) {
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

func (o *OrderedObject) Clone() *OrderedObject {
	cp := NewOrderedObject()
	o.ForEach(func(k string, v *Value) bool {
		cp.Set(k, v.Clone())
		return true
	})
	return cp
}
