// Package core holds the in-memory JSON value model the rest of the
// pipeline walks: a tree of *Value nodes with insertion-ordered objects,
// plus the decode/encode/convert helpers that sit at the module's external
// boundary (the document codec and the type-directed deserializer).
package core

// Kind tags the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable-by-convention JSON value. Reads never mutate it;
// the mutating selector in internal/mutate is the only caller permitted to
// rewrite arr/obj in place, and only on a value tree obtained from Clone.
type Value struct {
	kind Kind

	b bool

	isInt bool
	i     int64
	n     float64

	s string

	arr []*Value
	obj *OrderedObject
}

func NewNull() *Value { return &Value{kind: Null} }

func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

func NewFloat(n float64) *Value { return &Value{kind: Number, n: n} }

func NewInt(i int64) *Value { return &Value{kind: Number, isInt: true, i: i, n: float64(i)} }

func NewString(s string) *Value { return &Value{kind: String, s: s} }

func NewArray(items []*Value) *Value { return &Value{kind: Array, arr: items} }

func NewObject(o *OrderedObject) *Value { return &Value{kind: Object, obj: o} }

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool { return v.kind == Null }

func (v *Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Float returns the value's numeric reading regardless of whether it was
// parsed as an integer or a float literal.
func (v *Value) Float() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.n, true
}

// IsInt reports whether the number was decoded from an integer literal
// (no '.' or exponent).
func (v *Value) IsInt() bool { return v.kind == Number && v.isInt }

func (v *Value) Int() (int64, bool) {
	if v.kind != Number || !v.isInt {
		return 0, false
	}
	return v.i, true
}

func (v *Value) String() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

func (v *Value) Array() ([]*Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	return v.arr, true
}

func (v *Value) Object() (*OrderedObject, bool) {
	if v.kind != Object {
		return nil, false
	}
	return v.obj, true
}

// SetIndex overwrites the value at index i of an array value in place.
func (v *Value) SetIndex(i int, nv *Value) {
	if v.kind == Array && i >= 0 && i < len(v.arr) {
		v.arr[i] = nv
	}
}

// DeleteIndex removes index i from an array value in place, shifting
// subsequent elements down by one.
func (v *Value) DeleteIndex(i int) {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return
	}
	v.arr = append(v.arr[:i], v.arr[i+1:]...)
}

// SetKey overwrites (or inserts) a key of an object value in place.
func (v *Value) SetKey(key string, nv *Value) {
	if v.kind == Object {
		v.obj.Set(key, nv)
	}
}

// DeleteKey removes a key from an object value in place.
func (v *Value) DeleteKey(key string) {
	if v.kind == Object {
		v.obj.Delete(key)
	}
}

// Clone deep-copies the value tree. The mutating selector always operates
// on a clone so the caller's original document is left untouched.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Array:
		items := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			items[i] = e.Clone()
		}
		return &Value{kind: Array, arr: items}
	case Object:
		return &Value{kind: Object, obj: v.obj.Clone()}
	default:
		cp := *v
		return &cp
	}
}

// Equal reports structural equality. Numbers compare by their float64
// reading, so an integer and a float of the same value are equal.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case Number:
		return a.n == b.n
	case String:
		return a.s == b.s
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		equal := true
		a.obj.ForEach(func(k string, av *Value) bool {
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				equal = false
				return false
			}
			return true
		})
		return equal
	default:
		return false
	}
}
