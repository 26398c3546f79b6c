package core

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/474420502/xjsonpath/internal/xerr"
)

// ToInterface converts a Value tree into plain Go values (map[string]interface{},
// []interface{}, string, float64/int64, bool, nil), the representation
// jsonpath.Select and the Replace callback hand to callers. Object key order
// is not preserved in this representation, since Go's map type can't carry it.
func ToInterface(v *Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.b
	case Number:
		if v.isInt {
			return v.i
		}
		return v.n
	case String:
		return v.s
	case Array:
		out := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToInterface(e)
		}
		return out
	case Object:
		out := make(map[string]interface{}, v.obj.Len())
		v.obj.ForEach(func(k string, ev *Value) bool {
			out[k] = ToInterface(ev)
			return true
		})
		return out
	default:
		return nil
	}
}

// FromInterface converts a plain Go value back into a Value tree, the
// counterpart the mutating selector uses for the replacement values a
// caller's Replace callback returns.
func FromInterface(value interface{}) (*Value, error) {
	switch val := value.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		return val, nil
	case bool:
		return NewBool(val), nil
	case string:
		return NewString(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int8:
		return NewInt(int64(val)), nil
	case int16:
		return NewInt(int64(val)), nil
	case int32:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case uint:
		return NewInt(int64(val)), nil
	case uint8:
		return NewInt(int64(val)), nil
	case uint16:
		return NewInt(int64(val)), nil
	case uint32:
		return NewInt(int64(val)), nil
	case uint64:
		return NewInt(int64(val)), nil
	case float32:
		return NewFloat(float64(val)), nil
	case float64:
		return NewFloat(val), nil
	case []interface{}:
		items := make([]*Value, len(val))
		for i, e := range val {
			cv, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			items[i] = cv
		}
		return NewArray(items), nil
	case map[string]interface{}:
		obj := NewOrderedObject()
		for k, e := range val {
			cv, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			obj.Set(k, cv)
		}
		return NewObject(obj), nil
	default:
		return nil, xerr.Convert("unsupported Go type %T for replacement value", value)
	}
}

// Unmarshal decodes the Value tree into a caller-supplied Go type, the
// type-directed deserializer jsonpath.SelectAs[T] builds on. It round-trips
// through Encode so json-iterator's reflection-based decoder, not a second
// hand-rolled one, does the schema-aware work.
func Unmarshal(v *Value, out interface{}) error {
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, out); err != nil {
		return xerr.Convert("%s", err.Error())
	}
	return nil
}
