package types

import (
	"sync/atomic"

	"github.com/iFrostizz/rlp-go/crypto"
	"github.com/iFrostizz/rlp-go/primitives"
)

// Withdrawal is an EIP-4895 validator withdrawal, carried in a Shanghai+
// block body alongside the transaction list.
type Withdrawal struct {
	Index          uint64
	ValidatorIndex uint64
	Address        primitives.Address
	Amount         primitives.Word
}

// Block is a header paired with its transaction list, its uncle headers,
// and (post-Shanghai) its withdrawal list.
type Block struct {
	Header       Header
	Transactions []*TxEnvelope
	Uncles       []Header
	Withdrawals  []Withdrawal

	hashCache atomic.Pointer[primitives.Word]
}

// Hash returns the block's hash: Keccak-256 over the RLP encoding of the
// header alone.
func (b *Block) Hash() primitives.Word {
	if p := b.hashCache.Load(); p != nil {
		return *p
	}
	h := crypto.Keccak256Word(b.Header.EncodeRLP())
	b.hashCache.CompareAndSwap(nil, &h)
	return *b.hashCache.Load()
}
