package types

import (
	"bytes"
	"testing"

	"github.com/iFrostizz/rlp-go/primitives"
	"github.com/iFrostizz/rlp-go/rlp"
)

func sampleCommon() Common {
	w32 := func(b byte) primitives.Word {
		buf := make([]byte, 32)
		buf[31] = b
		w, _ := primitives.NewWord(buf)
		return w
	}
	addr, _ := primitives.NewAddress(bytes.Repeat([]byte{0xaa}, 20))
	bloom, _ := primitives.NewBloom(make([]byte, 256))
	nonce, _ := primitives.NewNonce(make([]byte, 8))
	return Common{
		ParentHash:  w32(1),
		UncleHash:   w32(2),
		Coinbase:    addr,
		StateRoot:   w32(3),
		TxRoot:      w32(4),
		ReceiptHash: w32(5),
		Bloom:       bloom,
		Difficulty:  w32(6),
		Number:      w32(7),
		GasLimit:    w32(8),
		GasUsed:     w32(9),
		Time:        w32(10),
		Extra:       []byte("extra"),
		MixDigest:   w32(11),
		Nonce:       nonce,
	}
}

func TestLegacyHeaderRoundTrip(t *testing.T) {
	h := &LegacyHeader{Common: sampleCommon()}
	enc := h.EncodeRLP()

	got, err := HeaderFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	lh, ok := got.(*LegacyHeader)
	if !ok {
		t.Fatalf("got %T, want *LegacyHeader", got)
	}
	if lh.FieldCount() != 15 {
		t.Fatalf("got field count %d, want 15", lh.FieldCount())
	}
	if !bytes.Equal(lh.EncodeRLP(), enc) {
		t.Fatal("re-encoding the decoded header did not reproduce the original bytes")
	}
}

func TestLondonHeaderRoundTrip(t *testing.T) {
	baseFee, _ := primitives.NewWord([]byte{0x09})
	h := &LondonHeader{Common: sampleCommon(), BaseFee: baseFee}
	enc := h.EncodeRLP()

	got, err := HeaderFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	lh, ok := got.(*LondonHeader)
	if !ok {
		t.Fatalf("got %T, want *LondonHeader", got)
	}
	if lh.FieldCount() != 16 {
		t.Fatalf("got field count %d, want 16", lh.FieldCount())
	}
	if !bytes.Equal(lh.BaseFee.Bytes, baseFee.Bytes) {
		t.Fatalf("got base fee % x, want % x", lh.BaseFee.Bytes, baseFee.Bytes)
	}
}

func TestCancunHeaderRoundTrip(t *testing.T) {
	mk := func(b byte) primitives.Word {
		w, _ := primitives.NewWord([]byte{b})
		return w
	}
	h := &CancunHeader{
		Common:                sampleCommon(),
		BaseFee:               mk(1),
		WithdrawalRoot:        mk(2),
		BlobGasUsed:           mk(3),
		ExcessBlobGas:         mk(4),
		ParentBeaconBlockRoot: mk(5),
	}
	enc := h.EncodeRLP()

	got, err := HeaderFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	ch, ok := got.(*CancunHeader)
	if !ok {
		t.Fatalf("got %T, want *CancunHeader", got)
	}
	if ch.FieldCount() != 20 {
		t.Fatalf("got field count %d, want 20", ch.FieldCount())
	}
}

func TestHeaderStrictRejectsUnknownFieldCount(t *testing.T) {
	// 18 fields: no known fork matches, strict decode must fail.
	items := commonFieldValues(&Common{})
	for i := 0; i < 3; i++ {
		items = append(items, rlp.NewBytes([]byte{byte(i)}))
	}
	enc := rlp.PackOne(rlp.NewList(items...))

	if _, err := HeaderFromBytes(enc); err == nil {
		t.Fatal("expected strict decode to reject an 18-field header")
	}

	got, err := HeaderFromBytesPermissive(enc)
	if err != nil {
		t.Fatal(err)
	}
	uh, ok := got.(*UnknownHeader)
	if !ok {
		t.Fatalf("got %T, want *UnknownHeader", got)
	}
	if len(uh.Trailing) != 3 {
		t.Fatalf("got %d trailing fields, want 3", len(uh.Trailing))
	}
}

func TestHeaderHashIsStableAndCached(t *testing.T) {
	h := &LegacyHeader{Common: sampleCommon()}
	first := h.Hash()
	second := h.Hash()
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatal("Hash() must be stable across calls")
	}
	if len(first.Bytes) != 32 {
		t.Fatalf("got hash length %d, want 32", len(first.Bytes))
	}
}
