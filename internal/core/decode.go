package core

import (
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/474420502/xjsonpath/internal/xerr"
)

// Decode parses raw JSON bytes into a Value tree. It preserves object key
// order and the integer/float distinction by walking json-iterator's
// low-level Iterator API directly instead of decoding into interface{}
// (which Go's map type would scramble).
func Decode(data []byte) (*Value, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, xerr.Decode("empty document")
	}
	iter := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowIterator(data)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnIterator(iter)

	v := decodeValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, xerr.Decode("%s", iter.Error.Error())
	}
	return v, nil
}

func decodeValue(iter *jsoniter.Iterator) *Value {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		obj := NewOrderedObject()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			obj.Set(field, decodeValue(it))
			return true
		})
		return NewObject(obj)
	case jsoniter.ArrayValue:
		var items []*Value
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, decodeValue(it))
			return true
		})
		return NewArray(items)
	case jsoniter.StringValue:
		return NewString(iter.ReadString())
	case jsoniter.NumberValue:
		num := string(iter.ReadNumber())
		if strings.ContainsAny(num, ".eE") {
			f, _ := strconv.ParseFloat(num, 64)
			return NewFloat(f)
		}
		if i, err := strconv.ParseInt(num, 10, 64); err == nil {
			return NewInt(i)
		}
		f, _ := strconv.ParseFloat(num, 64)
		return NewFloat(f)
	case jsoniter.BoolValue:
		return NewBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return NewNull()
	default:
		iter.Skip()
		return NewNull()
	}
}
