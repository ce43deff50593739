package rlp

// Unpack parses b into a Document: the ordered sequence of top-level RLP
// values encoded back-to-back in b. Most callers expect exactly one
// top-level value and should follow up with Document.One.
//
// Every canonical-form rule from the wire format is enforced here: a
// single byte below 0x80 must use the bare-byte form, long-form length
// prefixes are only legal for payloads over 55 bytes, length-of-length
// fields never carry a leading zero byte, and length-of-length is capped
// at 8 bytes (64-bit payload lengths only).
func Unpack(b []byte) (doc Document, err error) {
	defer func() { observeUnpack(len(b), err) }()
	pos := 0
	for pos < len(b) {
		v, n, e := unpackOne(b, pos)
		if e != nil {
			return nil, e
		}
		doc = append(doc, v)
		pos += n
	}
	return doc, nil
}

// unpackOne decodes exactly one RLP value starting at b[pos] and returns
// it along with the number of bytes consumed.
func unpackOne(b []byte, pos int) (Value, int, error) {
	if pos >= len(b) {
		return Value{}, 0, newError(MissingBytes, "no value at end of input")
	}
	d := b[pos]

	switch {
	case d <= 0x7f:
		return NewBytes([]byte{d}), 1, nil

	case d <= 0xb7:
		size := int(d - 0x80)
		start := pos + 1
		end := start + size
		if end > len(b) {
			return Value{}, 0, newError(MissingBytes, "short string payload truncated")
		}
		if size == 1 && b[start] < 0x80 {
			return Value{}, 0, newError(InvalidBytes, "single byte below 0x80 must use the bare-byte form")
		}
		return NewBytes(cloneBytes(b[start:end])), 1 + size, nil

	case d <= 0xbf:
		lenOfLen := int(d - 0xb7)
		if lenOfLen > 8 {
			return Value{}, 0, newError(InvalidLength, "length-of-length exceeds 8 bytes")
		}
		lenStart := pos + 1
		lenEnd := lenStart + lenOfLen
		if lenEnd > len(b) {
			return Value{}, 0, newError(MissingBytes, "long string length field truncated")
		}
		lenBytes := b[lenStart:lenEnd]
		if len(lenBytes) > 0 && lenBytes[0] == 0x00 {
			return Value{}, 0, newError(TrailingBytes, "length field has a leading zero byte")
		}
		size, err := decodeLength(lenBytes)
		if err != nil {
			return Value{}, 0, err
		}
		if size <= 55 {
			return Value{}, 0, newError(InvalidLength, "long string form used for a payload of 55 bytes or fewer")
		}
		start := lenEnd
		end := start + int(size)
		if end < start || end > len(b) {
			return Value{}, 0, newError(MissingBytes, "long string payload truncated")
		}
		return NewBytes(cloneBytes(b[start:end])), end - pos, nil

	case d <= 0xf7:
		size := int(d - 0xc0)
		start := pos + 1
		end := start + size
		if end > len(b) {
			return Value{}, 0, newError(MissingBytes, "short list payload truncated")
		}
		children, err := unpackChildren(b[start:end])
		if err != nil {
			return Value{}, 0, err
		}
		return NewList(children...), end - pos, nil

	default:
		lenOfLen := int(d - 0xf7)
		if lenOfLen > 8 {
			return Value{}, 0, newError(InvalidLength, "length-of-length exceeds 8 bytes")
		}
		lenStart := pos + 1
		lenEnd := lenStart + lenOfLen
		if lenEnd > len(b) {
			return Value{}, 0, newError(MissingBytes, "long list length field truncated")
		}
		lenBytes := b[lenStart:lenEnd]
		if len(lenBytes) > 0 && lenBytes[0] == 0x00 {
			return Value{}, 0, newError(TrailingBytes, "length field has a leading zero byte")
		}
		size, err := decodeLength(lenBytes)
		if err != nil {
			return Value{}, 0, err
		}
		if size <= 55 {
			return Value{}, 0, newError(InvalidLength, "long list form used for a payload of 55 bytes or fewer")
		}
		start := lenEnd
		end := start + int(size)
		if end < start || end > len(b) {
			return Value{}, 0, newError(MissingBytes, "long list payload truncated")
		}
		children, err := unpackChildren(b[start:end])
		if err != nil {
			return Value{}, 0, err
		}
		return NewList(children...), end - pos, nil
	}
}

// unpackChildren decodes a complete list payload into its child values.
func unpackChildren(payload []byte) ([]Value, error) {
	var out []Value
	pos := 0
	for pos < len(payload) {
		v, n, err := unpackOne(payload, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		pos += n
	}
	return out, nil
}

// decodeLength reads a big-endian length field. The caller has already
// rejected a leading zero byte and an over-wide field.
func decodeLength(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, newError(InvalidLength, "length field wider than 8 bytes")
	}
	var v uint64
	for _, x := range b {
		v = (v << 8) | uint64(x)
	}
	return v, nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
