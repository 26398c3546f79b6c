package core

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"

	"github.com/474420502/xjsonpath/internal/xerr"
)

// Encode serializes a Value tree back to JSON bytes, preserving object key
// order via the Stream's WriteObjectField calls (issued in OrderedObject's
// own iteration order, not re-sorted).
func Encode(v *Value) ([]byte, error) {
	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	writeValue(stream, v)
	if stream.Error != nil {
		return nil, xerr.Encode("%s", stream.Error.Error())
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// EncodePretty serializes a Value tree with indentation, for the
// cmd/jsonpathcheck CLI's human-facing output.
func EncodePretty(v *Value) ([]byte, error) {
	raw, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}

func writeValue(stream *jsoniter.Stream, v *Value) {
	if v == nil {
		stream.WriteNil()
		return
	}
	switch v.kind {
	case Null:
		stream.WriteNil()
	case Bool:
		stream.WriteBool(v.b)
	case Number:
		if v.isInt {
			stream.WriteInt64(v.i)
		} else {
			stream.WriteFloat64(v.n)
		}
	case String:
		stream.WriteString(v.s)
	case Array:
		stream.WriteArrayStart()
		for i, e := range v.arr {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, e)
		}
		stream.WriteArrayEnd()
	case Object:
		stream.WriteObjectStart()
		first := true
		v.obj.ForEach(func(k string, ev *Value) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(k)
			writeValue(stream, ev)
			return true
		})
		stream.WriteObjectEnd()
	}
}
