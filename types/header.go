// Package types implements the Ethereum transaction-envelope and
// block-header model on top of the rlp package's framer and bridge: the
// EIP-2718 typed-transaction wrapping rule, fork-variant header dispatch
// by raw field count, and block assembly.
package types

import (
	"sync/atomic"

	"github.com/iFrostizz/rlp-go/crypto"
	"github.com/iFrostizz/rlp-go/primitives"
)

// Common holds the 15 header fields present in every fork variant,
// in their canonical wire order.
type Common struct {
	ParentHash  primitives.Word
	UncleHash   primitives.Word
	Coinbase    primitives.Address
	StateRoot   primitives.Word
	TxRoot      primitives.Word
	ReceiptHash primitives.Word
	Bloom       primitives.Bloom
	Difficulty  primitives.Word
	Number      primitives.Word
	GasLimit    primitives.Word
	GasUsed     primitives.Word
	Time        primitives.Word
	Extra       []byte
	MixDigest   primitives.Word
	Nonce       primitives.Nonce
}

// Header is satisfied by every fork variant. FieldCount reports how many
// top-level RLP items the variant's wire encoding carries — the sole
// dispatch key decoders use to pick a variant.
type Header interface {
	// CommonFields returns the 15 fields shared by every variant.
	CommonFields() *Common
	// FieldCount returns the number of top-level fields this variant's
	// wire form carries.
	FieldCount() int
	// EncodeRLP renders the header's full RLP encoding, common fields
	// followed by the variant-specific tail.
	EncodeRLP() []byte
	// Hash returns this header's Keccak-256 hash, computed (and cached)
	// over EncodeRLP's output.
	Hash() primitives.Word
}

// hashCache is embedded in every variant to provide the lazy,
// write-once-per-instance hash memoization the teacher's Header.Hash()
// uses.
type hashCache struct {
	hash atomic.Pointer[primitives.Word]
}

func (c *hashCache) cachedHash(encode func() []byte) primitives.Word {
	if p := c.hash.Load(); p != nil {
		return *p
	}
	h := crypto.Keccak256Word(encode())
	c.hash.CompareAndSwap(nil, &h)
	return *c.hash.Load()
}

// LegacyHeader is the 15-field pre-London header.
type LegacyHeader struct {
	Common
	hashCache
}

func (h *LegacyHeader) CommonFields() *Common { return &h.Common }
func (h *LegacyHeader) FieldCount() int        { return 15 }
func (h *LegacyHeader) Hash() primitives.Word  { return h.cachedHash(h.EncodeRLP) }

// LondonHeader appends base_fee (16 fields).
type LondonHeader struct {
	Common
	BaseFee primitives.Word
	hashCache
}

func (h *LondonHeader) CommonFields() *Common { return &h.Common }
func (h *LondonHeader) FieldCount() int        { return 16 }
func (h *LondonHeader) Hash() primitives.Word  { return h.cachedHash(h.EncodeRLP) }

// ShanghaiHeader appends withdrawal_root (17 fields).
type ShanghaiHeader struct {
	Common
	BaseFee        primitives.Word
	WithdrawalRoot primitives.Word
	hashCache
}

func (h *ShanghaiHeader) CommonFields() *Common { return &h.Common }
func (h *ShanghaiHeader) FieldCount() int        { return 17 }
func (h *ShanghaiHeader) Hash() primitives.Word  { return h.cachedHash(h.EncodeRLP) }

// CancunHeader appends blob_gas_used, excess_blob_gas, and
// parent_beacon_block_root (20 fields).
type CancunHeader struct {
	Common
	BaseFee               primitives.Word
	WithdrawalRoot        primitives.Word
	BlobGasUsed           primitives.Word
	ExcessBlobGas         primitives.Word
	ParentBeaconBlockRoot primitives.Word
	hashCache
}

func (h *CancunHeader) CommonFields() *Common { return &h.Common }
func (h *CancunHeader) FieldCount() int        { return 20 }
func (h *CancunHeader) Hash() primitives.Word  { return h.cachedHash(h.EncodeRLP) }

// UnknownHeader is any other field count >= 15: the 15 common fields plus
// whatever trailing items were present, retained verbatim as opaque byte
// strings so a forward-compatible fork's header round-trips even though
// this module does not know its schema.
type UnknownHeader struct {
	Common
	Trailing [][]byte
	hashCache
}

func (h *UnknownHeader) CommonFields() *Common { return &h.Common }
func (h *UnknownHeader) FieldCount() int        { return 15 + len(h.Trailing) }
func (h *UnknownHeader) Hash() primitives.Word  { return h.cachedHash(h.EncodeRLP) }
