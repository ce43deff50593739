package types

import (
	"github.com/iFrostizz/rlp-go/primitives"
	"github.com/iFrostizz/rlp-go/rlp"
)

// encPool is the shared scratch-buffer pool backing the hand-written
// header/transaction/block codecs' list assembly, reused across calls
// instead of allocating a fresh Value tree walk per encode.
var encPool = rlp.NewEncoderPool()

// uint64Bytes renders v as its canonical RLP big-endian form: minimal
// width, leading zeros stripped, zero itself as the empty slice.
func uint64Bytes(v uint64) []byte {
	if v == 0 {
		return nil
	}
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// uint64Field decodes a Bytes value as a canonical unsigned integer,
// rejecting a non-canonical leading zero byte or a value too wide for 64
// bits.
func uint64Field(v rlp.Value) (uint64, error) {
	b, err := bytesValue(v)
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, newRLPError(rlp.InvalidLength, "integer payload wider than 8 bytes")
	}
	if len(b) > 0 && b[0] == 0x00 {
		return 0, newRLPError(rlp.TrailingBytes, "integer has a non-canonical leading zero byte")
	}
	var out uint64
	for _, x := range b {
		out = (out << 8) | uint64(x)
	}
	return out, nil
}

func encodeWordList(words []primitives.Word) rlp.Value {
	items := make([]rlp.Value, len(words))
	for i, w := range words {
		items[i] = rlp.NewBytes(w.Bytes)
	}
	return rlp.NewList(items...)
}

func decodeWordList(v rlp.Value) ([]primitives.Word, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "expected a List of words")
	}
	out := make([]primitives.Word, len(v.Children))
	for i, c := range v.Children {
		w, err := wordField(c)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// wordField decodes v's Bytes payload into a bounds-checked primitives.Word,
// rejecting a field the primitive newtype's max-length contract (SPEC_FULL
// §3) would otherwise silently truncate or accept.
func wordField(v rlp.Value) (primitives.Word, error) {
	b, err := bytesValue(v)
	if err != nil {
		return primitives.Word{}, err
	}
	w, err := primitives.NewWord(b)
	if err != nil {
		return primitives.Word{}, newRLPError(rlp.InvalidLength, err.Error())
	}
	return w, nil
}

// addressField decodes v's Bytes payload into a bounds-checked
// primitives.Address. See wordField.
func addressField(v rlp.Value) (primitives.Address, error) {
	b, err := bytesValue(v)
	if err != nil {
		return primitives.Address{}, err
	}
	a, err := primitives.NewAddress(b)
	if err != nil {
		return primitives.Address{}, newRLPError(rlp.InvalidLength, err.Error())
	}
	return a, nil
}

// bloomField decodes v's Bytes payload into a bounds-checked
// primitives.Bloom. See wordField.
func bloomField(v rlp.Value) (primitives.Bloom, error) {
	b, err := bytesValue(v)
	if err != nil {
		return primitives.Bloom{}, err
	}
	bl, err := primitives.NewBloom(b)
	if err != nil {
		return primitives.Bloom{}, newRLPError(rlp.InvalidLength, err.Error())
	}
	return bl, nil
}

// nonceField decodes v's Bytes payload into a bounds-checked
// primitives.Nonce. See wordField.
func nonceField(v rlp.Value) (primitives.Nonce, error) {
	b, err := bytesValue(v)
	if err != nil {
		return primitives.Nonce{}, err
	}
	n, err := primitives.NewNonce(b)
	if err != nil {
		return primitives.Nonce{}, newRLPError(rlp.InvalidLength, err.Error())
	}
	return n, nil
}

// packListPayload wraps an already-assembled list payload (the
// concatenated encodings of a list's items, built via rlp.AppendBytes /
// rlp.EncodeUint64 rather than a Value tree) with its RLP list header.
func packListPayload(payload []byte) []byte {
	return rlp.WrapList(payload)
}
