package types

import (
	"bytes"
	"testing"

	"github.com/iFrostizz/rlp-go/primitives"
	"github.com/iFrostizz/rlp-go/rlp"
)

func word(b ...byte) primitives.Word {
	w, _ := primitives.NewWord(b)
	return w
}

func addr20(fill byte) primitives.Address {
	a, _ := primitives.NewAddress(bytes.Repeat([]byte{fill}, 20))
	return a
}

// typedPayload unwraps a typed envelope's on-the-wire form (a single RLP
// byte string) and returns its content, tag_byte || rlp(struct).
func typedPayload(t *testing.T, enc []byte) []byte {
	t.Helper()
	doc, err := rlp.Unpack(enc)
	if err != nil {
		t.Fatal(err)
	}
	v, err := doc.One()
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsBytes() || len(v.Bytes) == 0 {
		t.Fatalf("typed envelope must be a non-empty RLP byte string, got % x", enc)
	}
	return v.Bytes
}

func TestLegacyTxRoundTrip(t *testing.T) {
	env := &TxEnvelope{Legacy: &LegacyTx{
		Nonce:    7,
		GasPrice: word(0x04),
		GasLimit: 21000,
		To:       addr20(0xaa),
		Value:    word(0x01),
		Data:     []byte("hi"),
		V:        word(0x1b),
		R:        word(0x01, 0x02),
		S:        word(0x03, 0x04),
	}}
	if env.Type() != LegacyTxType {
		t.Fatalf("got type %d, want LegacyTxType", env.Type())
	}

	enc := env.AsBytes()
	got, err := TxEnvelopeFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if got.Legacy == nil {
		t.Fatal("expected a decoded Legacy transaction")
	}
	if got.Legacy.Nonce != 7 || got.Legacy.GasLimit != 21000 {
		t.Fatalf("got %+v", got.Legacy)
	}
	if !bytes.Equal(got.AsBytes(), enc) {
		t.Fatal("re-encoding the decoded envelope did not reproduce the original bytes")
	}
}

func TestAccessListTxRoundTrip(t *testing.T) {
	env := &TxEnvelope{AccessList: &AccessListTx{
		ChainID:  word(0x01),
		Nonce:    1,
		GasPrice: word(0x02),
		GasLimit: 50000,
		To:       addr20(0xbb),
		Value:    word(0x00),
		Data:     nil,
		AccessList: AccessList{
			{Address: addr20(0xcc), StorageKeys: []primitives.Word{word(0x05)}},
		},
		YParity: word(0x01),
		R:       word(0x0a),
		S:       word(0x0b),
	}}
	if env.Type() != AccessListTxType {
		t.Fatalf("got type %d, want AccessListTxType", env.Type())
	}

	enc := env.AsBytes()
	wrapped := typedPayload(t, enc)
	if wrapped[0] != AccessListTxType {
		t.Fatalf("typed envelope payload must start with its tag byte, got %#x", wrapped[0])
	}

	got, err := TxEnvelopeFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if got.AccessList == nil {
		t.Fatal("expected a decoded AccessList transaction")
	}
	if len(got.AccessList.AccessList) != 1 || !bytes.Equal(got.AccessList.AccessList[0].Address.Bytes, addr20(0xcc).Bytes) {
		t.Fatalf("got %+v", got.AccessList.AccessList)
	}
}

func TestDynamicFeeTxRoundTrip(t *testing.T) {
	env := &TxEnvelope{DynamicFee: &DynamicFeeTx{
		ChainID:              word(0x01),
		Nonce:                2,
		MaxPriorityFeePerGas: word(0x01),
		MaxFeePerGas:         word(0x02),
		GasLimit:             30000,
		To:                   addr20(0xdd),
		Value:                word(0x00),
		YParity:              word(0x00),
		R:                    word(0x0c),
		S:                    word(0x0d),
	}}
	enc := env.AsBytes()
	got, err := TxEnvelopeFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if got.DynamicFee == nil || got.DynamicFee.Nonce != 2 {
		t.Fatalf("got %+v", got.DynamicFee)
	}
}

func TestBlobTxRoundTrip(t *testing.T) {
	env := &TxEnvelope{Blob: &BlobTx{
		ChainID:              word(0x01),
		Nonce:                3,
		MaxPriorityFeePerGas: word(0x01),
		MaxFeePerGas:         word(0x02),
		GasLimit:             40000,
		To:                   addr20(0xee),
		Value:                word(0x00),
		MaxFeePerBlobGas:     word(0x09),
		BlobHashes:           []primitives.Word{word(0x11), word(0x22)},
		YParity:              word(0x01),
		R:                    word(0x0e),
		S:                    word(0x0f),
	}}
	enc := env.AsBytes()
	if wrapped := typedPayload(t, enc); wrapped[0] != BlobTxType {
		t.Fatalf("got tag %#x, want BlobTxType", wrapped[0])
	}

	got, err := TxEnvelopeFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Blob.BlobHashes) != 2 {
		t.Fatalf("got %d blob hashes, want 2", len(got.Blob.BlobHashes))
	}
}

func TestTxEnvelopeRejectsUnknownTag(t *testing.T) {
	bad := []byte{0x7f} // single byte 0x7f, a bare-byte RLP Bytes value with an unknown tag
	_, err := TxEnvelopeFromBytes(bad)
	if err == nil {
		t.Fatal("expected an error for an unknown transaction type tag")
	}
}

func TestTxEnvelopeHashIsStableAndFullWidth(t *testing.T) {
	env := &TxEnvelope{Legacy: &LegacyTx{Nonce: 1, GasPrice: word(0x01), GasLimit: 21000, To: addr20(0x01), Value: word(0x00)}}
	h1 := env.Hash()
	h2 := env.Hash()
	if !bytes.Equal(h1.Bytes, h2.Bytes) {
		t.Fatal("Hash() must be stable across calls")
	}
	if len(h1.Bytes) != 32 {
		t.Fatalf("got hash length %d, want 32", len(h1.Bytes))
	}
}
