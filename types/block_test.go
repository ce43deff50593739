package types

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestBlockRoundTrip(t *testing.T) {
	header := &LegacyHeader{Common: sampleCommon()}
	tx := &TxEnvelope{Legacy: &LegacyTx{
		Nonce:    1,
		GasPrice: word(0x01),
		GasLimit: 21000,
		To:       addr20(0x01),
		Value:    word(0x00),
		V:        word(0x1b),
		R:        word(0x01),
		S:        word(0x02),
	}}
	blk := &Block{Header: header, Transactions: []*TxEnvelope{tx}, Uncles: nil}

	enc := blk.EncodeRLP()
	got, err := BlockFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Header.(*LegacyHeader); !ok {
		t.Fatalf("got header type %T, want *LegacyHeader", got.Header)
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got.Transactions))
	}
	if !bytes.Equal(got.EncodeRLP(), enc) {
		t.Fatal("re-encoding the decoded block did not reproduce the original bytes")
	}
}

func TestBlockWithWithdrawalsRoundTrip(t *testing.T) {
	header := &ShanghaiHeader{Common: sampleCommon(), BaseFee: word(0x07), WithdrawalRoot: word(0x08)}
	blk := &Block{
		Header:       header,
		Transactions: nil,
		Uncles:       nil,
		Withdrawals: []Withdrawal{
			{Index: 1, ValidatorIndex: 2, Address: addr20(0x03), Amount: word(0x09)},
		},
	}

	enc := blk.EncodeRLP()
	got, err := BlockFromBytes(enc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Withdrawals) != 1 || got.Withdrawals[0].Index != 1 {
		t.Fatalf("got %+v", got.Withdrawals)
	}
}

// TestLegacyBlockFixture decodes a known legacy block: the field count puts
// the header at the Legacy variant, the block carries exactly one Legacy
// transaction, and both the transaction hash and the block hash match
// independently verified Keccak-256 digests.
func TestLegacyBlockFixture(t *testing.T) {
	raw, err := hex.DecodeString(legacyBlockFixtureHex)
	if err != nil {
		t.Fatal(err)
	}

	blk, err := BlockFromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}

	header, ok := blk.Header.(*LegacyHeader)
	if !ok {
		t.Fatalf("got header type %T, want *LegacyHeader", blk.Header)
	}
	if header.GasLimit.Uint64() != 3141592 {
		t.Fatalf("got gas limit %d, want 3141592", header.GasLimit.Uint64())
	}
	if header.GasUsed.Uint64() != 21000 {
		t.Fatalf("got gas used %d, want 21000", header.GasUsed.Uint64())
	}
	if header.Time.Uint64() != 1426516743 {
		t.Fatalf("got time %d, want 1426516743", header.Time.Uint64())
	}

	if len(blk.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(blk.Transactions))
	}
	tx := blk.Transactions[0]
	if tx.Legacy == nil {
		t.Fatal("expected a decoded Legacy transaction")
	}
	if tx.Legacy.GasLimit != 50000 {
		t.Fatalf("got gas limit %d, want 50000", tx.Legacy.GasLimit)
	}

	wantTxHash := "77b19baa4de67e45a7b26e4a220bccdbb6731885aa9927064e239ca232023215"
	if got := hex.EncodeToString(tx.Hash().Bytes); got != wantTxHash {
		t.Fatalf("got tx hash %s, want %s", got, wantTxHash)
	}

	wantBlockHash := "0a5843ac1cb04865017cb35a57b50b07084e5fcee39b5acadade33149f4fff9e"
	if got := hex.EncodeToString(blk.Hash().Bytes); got != wantBlockHash {
		t.Fatalf("got block hash %s, want %s", got, wantBlockHash)
	}
}

const legacyBlockFixtureHex = "f90260f901f9a083cafc574e1f51ba9dc0568fc617a08ea2429fb384059c972f13b19fa1c8dd55a01dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347948888f1f195afa192cfee860698584c030f4c9db1a0ef1552a40b7165c3cd773806b9e0c165b75356e0314bf0706f279c729f51e017a05fe50b260da6308036625b850b5d6ced6d0a9f814c0688bc91ffb7b7a3a54b67a0bc37d79753ad738a6dac4921e57392f145d8887476de3f783dfa7edae9283e52b90100000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000008302000001832fefd8825208845506eb0780a0bd4472abb6659ebe3ee06ee4d7b72a00a9f4d001caca51342001075469aff49888a13a5a8c8f2bb1c4f861f85f800a82c35094095e7baea6a6c7c4c2dfeb977efac326af552d870a801ba09bea4c4daac7c7c52e093e6a4c35dbbcf8856f1af7b059ba20253e70848d094fa08a8fae537ce25ed8cb5af9adac3f141af69bd515bd2ba031522df09b97dd72b1c0"
