package types

import "github.com/iFrostizz/rlp-go/rlp"

// newRLPError builds an *rlp.Error for failures raised by this package's
// hand-written codecs, so callers can branch on kind with errors.Is
// exactly as they would for a framer- or bridge-raised failure.
func newRLPError(kind rlp.ErrorKind, msg string) error {
	return &rlp.Error{Kind: kind, Msg: msg}
}
