package rlp

import (
	"reflect"
	"unicode/utf8"
)

// ToBytes projects val onto the RLP tree via the L2 bridge and renders it
// to bytes in one step. val must be one of the shapes in the lowering
// table documented on Enum and in SPEC_FULL.md §4.2: fixed-width
// int/uint/bool/string/[]byte/array/slice/struct, or a type implementing
// Enum.
func ToBytes(val interface{}) ([]byte, error) {
	v, err := ToValue(val)
	if err != nil {
		return nil, err
	}
	return PackOne(v), nil
}

// ToValue projects val onto a single RLP tree Value without rendering it
// to bytes. Useful for callers (the types package) composing a larger tree
// by hand around a bridge-encoded sub-value.
func ToValue(val interface{}) (Value, error) {
	return encodeValue(reflect.ValueOf(val))
}

// encodeValue lowers a single reflect.Value to exactly one tree Value.
func encodeValue(v reflect.Value) (Value, error) {
	if e, ok := asEnum(v); ok {
		return encodeEnum(e)
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return NewBytes([]byte{0x01}), nil
		}
		return NewBytes([]byte{0x00}), nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return NewBytes(stripLeadingZeros(bigEndianFixed(v.Uint(), v.Type().Bits()/8))), nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		width := v.Type().Bits() / 8
		if v.Type().Bits() == 0 {
			width = 8
		}
		return NewBytes(bigEndianFixed(uint64(v.Int()), width)), nil

	case reflect.String:
		return NewBytes([]byte(v.String())), nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return NewBytes(append([]byte(nil), v.Bytes()...)), nil
		}
		return encodeSequence(v)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			for i := 0; i < v.Len(); i++ {
				b[i] = byte(v.Index(i).Uint())
			}
			return NewBytes(b), nil
		}
		// Fixed-size tuple: transparent at the current nesting level. A
		// bare array value has no "current level" of its own to be
		// transparent into, so at the top of ToBytes it behaves like a
		// list; the splicing behavior is only observable when the array
		// is a struct field (see encodeStructFields).
		return encodeSequence(v)

	case reflect.Struct:
		if v.NumField() == 1 && v.Type().Field(0).IsExported() {
			// Newtype-struct: transparent, serializes the inner value.
			return encodeValue(v.Field(0))
		}
		return encodeStruct(v)

	case reflect.Ptr, reflect.Interface:
		return Value{}, newError(Message, "pointers and interfaces are not supported by the generic bridge (no Option support); dereference before calling ToBytes")

	case reflect.Invalid:
		return NewBytes(nil), nil

	default:
		return Value{}, newErrorf(Message, "unsupported type %s for generic RLP encoding", v.Type())
	}
}

// encodeSequence lowers a slice or fixed-size-tuple array to a List,
// splicing any nested fixed-size-tuple elements transparently.
func encodeSequence(v reflect.Value) (Value, error) {
	var children []Value
	for i := 0; i < v.Len(); i++ {
		if err := appendTransparent(&children, v.Index(i)); err != nil {
			return Value{}, err
		}
	}
	return NewList(children...), nil
}

// encodeStruct lowers a tuple-struct / struct-with-named-fields to a List
// wrapper around its exported fields in declaration order. A struct field
// that is itself a non-byte fixed-size array splices its elements directly
// into this list rather than nesting another List, per the "fixed-size
// tuple is transparent" rule.
func encodeStruct(v reflect.Value) (Value, error) {
	var children []Value
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if err := appendTransparent(&children, v.Field(i)); err != nil {
			return Value{}, err
		}
	}
	return NewList(children...), nil
}

// appendTransparent appends the Value(s) that fv contributes at the
// current nesting level: one Value for ordinary shapes, or the spliced
// elements of fv when fv is a non-byte fixed-size array (tuple).
func appendTransparent(dst *[]Value, fv reflect.Value) error {
	if fv.Kind() == reflect.Array && fv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < fv.Len(); i++ {
			if err := appendTransparent(dst, fv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
	val, err := encodeValue(fv)
	if err != nil {
		return err
	}
	*dst = append(*dst, val)
	return nil
}

// encodeEnum lowers a value implementing Enum per the unit/newtype/tuple
// lowering rules.
func encodeEnum(e Enum) (Value, error) {
	name, fields := e.RLPVariant()
	discriminator := NewBytes([]byte(name))

	switch len(fields) {
	case 0:
		// Unit variant: just the discriminator.
		return discriminator, nil
	case 1:
		// Newtype variant: a two-element List holding the
		// discriminator and the inline-encoded inner value.
		inner, err := encodeValue(reflect.ValueOf(fields[0]))
		if err != nil {
			return Value{}, err
		}
		return NewList(discriminator, inner), nil
	default:
		var payload []Value
		for _, f := range fields {
			if err := appendTransparent(&payload, reflect.ValueOf(f)); err != nil {
				return Value{}, err
			}
		}
		return NewList(discriminator, NewList(payload...)), nil
	}
}

func asEnum(v reflect.Value) (Enum, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if e, ok := v.Interface().(Enum); ok {
		return e, true
	}
	if v.CanAddr() {
		if e, ok := v.Addr().Interface().(Enum); ok {
			return e, true
		}
	}
	return nil, false
}

// stripLeadingZeros removes leading 0x00 bytes, per RLP's canonical
// unsigned-integer rule. A fully-zero input becomes the empty slice (the
// RLP encoding of the integer 0 is the empty byte string).
func stripLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// bigEndianFixed encodes u as exactly width big-endian bytes.
func bigEndianFixed(u uint64, width int) []byte {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(u)
		u >>= 8
	}
	return buf
}

// validUTF8 reports whether b is valid UTF-8, used by the decode side.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}
