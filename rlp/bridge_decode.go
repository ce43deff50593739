package rlp

import "reflect"

// FromBytes parses b into exactly one top-level RLP value and projects it
// onto out, which must be a non-nil pointer. It mirrors ToBytes: the same
// lowering table applies in reverse, plus the wire-level validation
// (exact-width checks, UTF-8 validation, bool range checks) that a decoder
// owes and an encoder does not.
func FromBytes(b []byte, out interface{}) error {
	doc, err := Unpack(b)
	if err != nil {
		return err
	}
	v, err := doc.One()
	if err != nil {
		return err
	}
	return FromValue(v, out)
}

// FromValue projects a single tree Value onto out, which must be a non-nil
// pointer. Used by callers (the types package) that have already entered a
// list by hand and want to decode one element generically.
func FromValue(v Value, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return newError(Message, "FromBytes/FromValue requires a non-nil pointer")
	}
	return decodeValue(v, rv.Elem())
}

// decodeValue fills dst (addressable, settable) from v.
func decodeValue(v Value, dst reflect.Value) error {
	if ef, ok := asEnumFactory(dst); ok {
		return decodeEnum(v, ef)
	}

	switch dst.Kind() {
	case reflect.Bool:
		if !v.IsBytes() {
			return newError(ExpectedBytes, "bool requires a Bytes value")
		}
		switch {
		case len(v.Bytes) == 1 && v.Bytes[0] == 0x00:
			dst.SetBool(false)
		case len(v.Bytes) == 1 && v.Bytes[0] == 0x01:
			dst.SetBool(true)
		default:
			return newError(InvalidBytes, "bool must be encoded as [0x00] (false) or [0x01] (true)")
		}
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		if !v.IsBytes() {
			return newError(ExpectedBytes, "unsigned integer requires a Bytes value")
		}
		width := dst.Type().Bits() / 8
		if len(v.Bytes) > width {
			return newErrorf(InvalidLength, "value of %d bytes overflows a %d-byte integer", len(v.Bytes), width)
		}
		if len(v.Bytes) > 0 && v.Bytes[0] == 0x00 {
			return newError(TrailingBytes, "unsigned integer has a non-canonical leading zero byte")
		}
		var u uint64
		for _, x := range v.Bytes {
			u = (u << 8) | uint64(x)
		}
		dst.SetUint(u)
		return nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		if !v.IsBytes() {
			return newError(ExpectedBytes, "signed integer requires a Bytes value")
		}
		width := dst.Type().Bits() / 8
		if width == 0 {
			width = 8
		}
		if len(v.Bytes) != width {
			return newErrorf(InvalidLength, "fixed-width signed integer requires exactly %d bytes, got %d", width, len(v.Bytes))
		}
		var u uint64
		for _, x := range v.Bytes {
			u = (u << 8) | uint64(x)
		}
		dst.SetInt(int64(u))
		return nil

	case reflect.String:
		if !v.IsBytes() {
			return newError(ExpectedBytes, "string requires a Bytes value")
		}
		if !validUTF8(v.Bytes) {
			return newError(InvalidBytes, "string value is not valid UTF-8")
		}
		dst.SetString(string(v.Bytes))
		return nil

	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			if !v.IsBytes() {
				return newError(ExpectedBytes, "byte slice requires a Bytes value")
			}
			out := make([]byte, len(v.Bytes))
			copy(out, v.Bytes)
			dst.SetBytes(out)
			return nil
		}
		return decodeSequence(v, dst)

	case reflect.Array:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			if !v.IsBytes() {
				return newError(ExpectedBytes, "byte array requires a Bytes value")
			}
			if len(v.Bytes) != dst.Len() {
				return newErrorf(InvalidLength, "fixed byte array requires exactly %d bytes, got %d", dst.Len(), len(v.Bytes))
			}
			for i := 0; i < dst.Len(); i++ {
				dst.Index(i).SetUint(uint64(v.Bytes[i]))
			}
			return nil
		}
		return decodeSequence(v, dst)

	case reflect.Struct:
		if dst.NumField() == 1 && dst.Type().Field(0).IsExported() {
			return decodeValue(v, dst.Field(0))
		}
		return decodeStruct(v, dst)

	default:
		return newErrorf(Message, "unsupported type %s for generic RLP decoding", dst.Type())
	}
}

// decodeSequence fills a slice or fixed-size-tuple array from a List value,
// un-splicing transparent nested tuples as it goes.
func decodeSequence(v Value, dst reflect.Value) error {
	if !v.IsList() {
		return newError(ExpectedList, "slice/tuple requires a List value")
	}
	children := v.Children

	if dst.Kind() == reflect.Slice {
		out := reflect.MakeSlice(dst.Type(), len(children), len(children))
		for i, c := range children {
			if err := decodeValue(c, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}

	// Fixed-size array (tuple): consume exactly dst.Len() children,
	// recursively un-splicing any element that is itself a non-byte array.
	idx := 0
	for i := 0; i < dst.Len(); i++ {
		n, err := decodeTransparent(children, idx, dst.Index(i))
		if err != nil {
			return err
		}
		idx += n
	}
	if idx != len(children) {
		return newErrorf(TrailingBytes, "tuple expected %d elements, list has %d", idx, len(children))
	}
	return nil
}

// decodeTransparent fills dst from children starting at idx, consuming
// however many elements dst's shape requires (more than one if dst is
// itself a non-byte fixed-size array), and returns that count.
func decodeTransparent(children []Value, idx int, dst reflect.Value) (int, error) {
	if dst.Kind() == reflect.Array && dst.Type().Elem().Kind() != reflect.Uint8 {
		consumed := 0
		for i := 0; i < dst.Len(); i++ {
			if idx+consumed >= len(children) {
				return 0, newError(MissingBytes, "tuple ran out of elements")
			}
			n, err := decodeTransparent(children, idx+consumed, dst.Index(i))
			if err != nil {
				return 0, err
			}
			consumed += n
		}
		return consumed, nil
	}
	if idx >= len(children) {
		return 0, newError(MissingBytes, "tuple ran out of elements")
	}
	if err := decodeValue(children[idx], dst); err != nil {
		return 0, err
	}
	return 1, nil
}

// decodeStruct fills a struct's exported fields in declaration order from a
// List value, un-splicing any field that is a non-byte fixed-size array.
func decodeStruct(v Value, dst reflect.Value) error {
	if !v.IsList() {
		return newError(ExpectedList, "struct requires a List value")
	}
	children := v.Children
	idx := 0
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		n, err := decodeTransparent(children, idx, dst.Field(i))
		if err != nil {
			return err
		}
		idx += n
	}
	if idx != len(children) {
		return newErrorf(TrailingBytes, "struct expected %d fields, list has %d", idx, len(children))
	}
	return nil
}

// decodeEnum dispatches a decoded value onto an EnumFactory: a unit variant
// is a bare Bytes discriminator, a newtype variant is a two-element List
// (discriminator, inline value), and a tuple/struct variant is a
// two-element List (discriminator, List of fields).
func decodeEnum(v Value, ef EnumFactory) error {
	if v.IsBytes() {
		return ef.SetRLPVariant(string(v.Bytes), nil)
	}
	if !v.IsList() || v.Len() != 2 {
		return newError(ExpectedList, "enum variant requires a Bytes discriminator or a 2-element [discriminator, payload] List")
	}
	name := v.Children[0]
	if !name.IsBytes() {
		return newError(ExpectedBytes, "enum discriminator must be a Bytes value")
	}
	payload := v.Children[1]
	if payload.IsList() {
		return ef.SetRLPVariant(string(name.Bytes), payload.Children)
	}
	return ef.SetRLPVariant(string(name.Bytes), []Value{payload})
}

func asEnumFactory(v reflect.Value) (EnumFactory, bool) {
	if !v.CanAddr() {
		return nil, false
	}
	ef, ok := v.Addr().Interface().(EnumFactory)
	return ef, ok
}
