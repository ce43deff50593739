package rlp

// Pack renders a Document back to bytes. For any b where Unpack(b)
// succeeds, Pack(Unpack(b)) == b — the framer performs no silent
// normalization.
func Pack(doc Document) []byte {
	var out []byte
	for _, v := range doc {
		out = append(out, packValue(v)...)
	}
	observePack(len(out))
	return out
}

// PackOne renders a single value, equivalent to Pack(Document{v}).
func PackOne(v Value) []byte {
	out := packValue(v)
	observePack(len(out))
	return out
}

func packValue(v Value) []byte {
	switch v.Kind {
	case KindEmptyList:
		return []byte{0x80}
	case KindList:
		var payload []byte
		for _, c := range v.Children {
			payload = append(payload, packValue(c)...)
		}
		return wrapList(payload)
	default: // KindBytes
		return packBytes(v.Bytes)
	}
}

// packBytes applies the three-way RLP string encoding rule: bare byte for
// a single byte below 0x80, short form for payloads up to 55 bytes, long
// form (length-of-length prefix) otherwise.
func packBytes(data []byte) []byte {
	n := len(data)
	if n == 1 && data[0] < 0x80 {
		return []byte{data[0]}
	}
	if n <= 55 {
		buf := make([]byte, 1+n)
		buf[0] = 0x80 + byte(n)
		copy(buf[1:], data)
		return buf
	}
	lenBytes := bigEndianMinimal(uint64(n))
	buf := make([]byte, 1+len(lenBytes)+n)
	buf[0] = 0xb7 + byte(len(lenBytes))
	copy(buf[1:], lenBytes)
	copy(buf[1+len(lenBytes):], data)
	return buf
}

// wrapList prepends a list header (short or long form) to an
// already-encoded list payload.
func wrapList(payload []byte) []byte {
	n := len(payload)
	if n <= 55 {
		buf := make([]byte, 1+n)
		buf[0] = 0xc0 + byte(n)
		copy(buf[1:], payload)
		return buf
	}
	lenBytes := bigEndianMinimal(uint64(n))
	buf := make([]byte, 1+len(lenBytes)+n)
	buf[0] = 0xf7 + byte(len(lenBytes))
	copy(buf[1:], lenBytes)
	copy(buf[1+len(lenBytes):], payload)
	return buf
}

// WrapList exposes wrapList for callers (the types package's hand-written
// header/transaction/block codecs) that build a list payload by hand and
// need only the header-prepending step, without going through a Value tree.
func WrapList(payload []byte) []byte {
	return wrapList(payload)
}

// bigEndianMinimal encodes u as big-endian bytes with no leading zero byte.
func bigEndianMinimal(u uint64) []byte {
	switch {
	case u < 1<<8:
		return []byte{byte(u)}
	case u < 1<<16:
		return []byte{byte(u >> 8), byte(u)}
	case u < 1<<24:
		return []byte{byte(u >> 16), byte(u >> 8), byte(u)}
	case u < 1<<32:
		return []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	case u < 1<<40:
		return []byte{byte(u >> 32), byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	case u < 1<<48:
		return []byte{byte(u >> 40), byte(u >> 32), byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	case u < 1<<56:
		return []byte{byte(u >> 48), byte(u >> 40), byte(u >> 32), byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	default:
		return []byte{byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32), byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	}
}
