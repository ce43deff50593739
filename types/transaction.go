package types

import (
	"sync/atomic"

	"github.com/iFrostizz/rlp-go/crypto"
	"github.com/iFrostizz/rlp-go/primitives"
)

// Transaction type tags, per EIP-2718. LegacyTxType has no wire
// representation of its own — a legacy transaction is a bare RLP list,
// never a tagged byte string — it exists only to label TxEnvelope.Type().
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01
	DynamicFeeTxType = 0x02
	BlobTxType       = 0x03
)

// AccessEntry is one entry of an access list: an address plus the
// storage slots the transaction pre-declares it will touch.
type AccessEntry struct {
	Address     primitives.Address
	StorageKeys []primitives.Word
}

// AccessList is an ordered sequence of AccessEntry.
type AccessList []AccessEntry

// LegacyTx is the original, untyped transaction format.
type LegacyTx struct {
	Nonce    uint64
	GasPrice primitives.Word
	GasLimit uint64
	To       primitives.Address
	Value    primitives.Word
	Data     []byte
	V, R, S  primitives.Word
}

// AccessListTx is EIP-2930: adds a chain ID and an access list, and
// replaces the legacy `v` signature component with an explicit parity bit.
type AccessListTx struct {
	ChainID    primitives.Word
	Nonce      uint64
	GasPrice   primitives.Word
	GasLimit   uint64
	To         primitives.Address
	Value      primitives.Word
	Data       []byte
	AccessList AccessList
	YParity    primitives.Word
	R, S       primitives.Word
}

// DynamicFeeTx is EIP-1559: replaces the single gas price with a priority
// fee and a fee cap.
type DynamicFeeTx struct {
	ChainID              primitives.Word
	Nonce                uint64
	MaxPriorityFeePerGas primitives.Word
	MaxFeePerGas         primitives.Word
	GasLimit             uint64
	To                   primitives.Address
	Value                primitives.Word
	Data                 []byte
	AccessList           AccessList
	YParity              primitives.Word
	R, S                 primitives.Word
}

// BlobTx is EIP-4844: a DynamicFeeTx plus a blob fee cap and the blob
// versioned hashes being committed to.
type BlobTx struct {
	ChainID              primitives.Word
	Nonce                uint64
	MaxPriorityFeePerGas primitives.Word
	MaxFeePerGas         primitives.Word
	GasLimit             uint64
	To                   primitives.Address
	Value                primitives.Word
	Data                 []byte
	AccessList           AccessList
	MaxFeePerBlobGas     primitives.Word
	BlobHashes           []primitives.Word
	YParity              primitives.Word
	R, S                 primitives.Word
}

// TxEnvelope is the tagged union over the four supported transaction
// kinds. Exactly one of the pointer fields is non-nil.
type TxEnvelope struct {
	Legacy     *LegacyTx
	AccessList *AccessListTx
	DynamicFee *DynamicFeeTx
	Blob       *BlobTx

	hashCache atomic.Pointer[primitives.Word]
}

// Type reports the envelope's EIP-2718 tag byte (0x00 for legacy, which
// never actually appears on the wire).
func (e *TxEnvelope) Type() int {
	switch {
	case e.AccessList != nil:
		return AccessListTxType
	case e.DynamicFee != nil:
		return DynamicFeeTxType
	case e.Blob != nil:
		return BlobTxType
	default:
		return LegacyTxType
	}
}

// Hash returns the envelope's Keccak-256 hash: for legacy, over the RLP
// encoding of the struct; for typed variants, over tag_byte || rlp(struct).
func (e *TxEnvelope) Hash() primitives.Word {
	if p := e.hashCache.Load(); p != nil {
		return *p
	}
	h := crypto.Keccak256Word(e.payloadBytes())
	e.hashCache.CompareAndSwap(nil, &h)
	return *e.hashCache.Load()
}
