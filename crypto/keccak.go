// Package crypto provides the Keccak-256 hashing used throughout the
// Ethereum type model for header, transaction, and block hashes.
package crypto

import (
	"github.com/iFrostizz/rlp-go/primitives"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Keccak256Word returns the Keccak-256 digest of the concatenation of
// data, wrapped as a primitives.Word (always the full 32 bytes — a
// digest is never shortened).
func Keccak256Word(data ...[]byte) primitives.Word {
	var arr [32]byte
	copy(arr[:], Keccak256(data...))
	return primitives.WordFromArray(arr)
}
