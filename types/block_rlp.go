package types

import "github.com/iFrostizz/rlp-go/rlp"

// EncodeRLP renders the block: header, transaction list (each envelope in
// its own on-the-wire form), uncle header list, and — when present — the
// withdrawal list appended as a fourth outer item.
func (b *Block) EncodeRLP() []byte {
	items := []rlp.Value{
		headerValue(b.Header),
		txListValue(b.Transactions),
		uncleListValue(b.Uncles),
	}
	if b.Withdrawals != nil {
		items = append(items, withdrawalListValue(b.Withdrawals))
	}
	return encPool.EncodeBatch(items)
}

// BlockFromBytes decodes a block strictly: the header must match one of
// the known fork field counts.
func BlockFromBytes(b []byte) (*Block, error) {
	return decodeBlock(b, false)
}

// BlockFromBytesPermissive decodes a block permissively: an
// unrecognized header field count promotes to UnknownHeader instead of
// failing.
func BlockFromBytesPermissive(b []byte) (*Block, error) {
	return decodeBlock(b, true)
}

func decodeBlock(b []byte, permissive bool) (*Block, error) {
	doc, err := rlp.Unpack(b)
	if err != nil {
		return nil, err
	}
	v, err := doc.One()
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "block must be an RLP list")
	}
	items := v.Children
	if len(items) != 3 && len(items) != 4 {
		return nil, newRLPError(rlp.InvalidLength, "block requires 3 fields, or 4 with a withdrawal list")
	}

	header, err := decodeHeaderValue(items[0], permissive)
	if err != nil {
		return nil, err
	}
	txs, err := decodeTxList(items[1])
	if err != nil {
		return nil, err
	}
	uncles, err := decodeUncleList(items[2], permissive)
	if err != nil {
		return nil, err
	}

	blk := &Block{Header: header, Transactions: txs, Uncles: uncles}
	if len(items) == 4 {
		withdrawals, err := decodeWithdrawalList(items[3])
		if err != nil {
			return nil, err
		}
		blk.Withdrawals = withdrawals
	}
	return blk, nil
}

func headerValue(h Header) rlp.Value {
	doc, err := rlp.Unpack(h.EncodeRLP())
	if err != nil {
		// EncodeRLP always produces well-formed output; a failure here
		// means a variant's encoder is broken, not that the input is bad.
		panic("types: header EncodeRLP produced unparseable output: " + err.Error())
	}
	v, _ := doc.One()
	return v
}

func txListValue(txs []*TxEnvelope) rlp.Value {
	items := make([]rlp.Value, len(txs))
	for i, tx := range txs {
		items[i] = valueFromBytes(tx.AsBytes())
	}
	return rlp.NewList(items...)
}

func decodeTxList(v rlp.Value) ([]*TxEnvelope, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "transaction list must be an RLP list")
	}
	out := make([]*TxEnvelope, len(v.Children))
	for i, c := range v.Children {
		tx, err := TxEnvelopeFromBytes(rlp.PackOne(c))
		if err != nil {
			return nil, err
		}
		out[i] = tx
	}
	return out, nil
}

func uncleListValue(uncles []Header) rlp.Value {
	items := make([]rlp.Value, len(uncles))
	for i, u := range uncles {
		items[i] = headerValue(u)
	}
	return rlp.NewList(items...)
}

func decodeUncleList(v rlp.Value, permissive bool) ([]Header, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "uncle list must be an RLP list")
	}
	out := make([]Header, len(v.Children))
	for i, c := range v.Children {
		h, err := decodeHeaderValue(c, permissive)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

// withdrawalListValue re-frames the append-built withdrawal list encoding
// as a tree Value so it can be spliced into the block's outer item list.
func withdrawalListValue(ws []Withdrawal) rlp.Value {
	return valueFromBytes(encodeWithdrawalList(ws))
}

// encodeWithdrawalList renders ws via the zero-reflection append fast path
// (rlp.EncodeUint64/AppendBytes/AppendListHeader/EstimateListSize) instead
// of building a Value tree, since a withdrawal has no nested structure
// worth the tree-walking overhead.
func encodeWithdrawalList(ws []Withdrawal) []byte {
	var payload []byte
	for _, w := range ws {
		payload = append(payload, encodeWithdrawal(w)...)
	}
	return packListPayload(payload)
}

func encodeWithdrawal(w Withdrawal) []byte {
	idxEnc := rlp.EncodeUint64(w.Index)
	validatorEnc := rlp.EncodeUint64(w.ValidatorIndex)
	capHint := len(idxEnc) + len(validatorEnc) +
		rlp.EstimateStringSize(len(w.Address.Bytes)) + rlp.EstimateStringSize(len(w.Amount.Bytes))
	payload := make([]byte, 0, capHint)
	payload = append(payload, idxEnc...)
	payload = append(payload, validatorEnc...)
	payload = rlp.AppendBytes(payload, w.Address.Bytes)
	payload = rlp.AppendBytes(payload, w.Amount.Bytes)

	buf := make([]byte, 0, rlp.EstimateListSize(len(payload)))
	buf = rlp.AppendListHeader(buf, len(payload))
	return append(buf, payload...)
}

func decodeWithdrawalList(v rlp.Value) ([]Withdrawal, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "withdrawal list must be an RLP list")
	}
	out := make([]Withdrawal, len(v.Children))
	for i, c := range v.Children {
		if !c.IsList() || c.Len() != 4 {
			return nil, newRLPError(rlp.InvalidLength, "withdrawal requires exactly 4 fields")
		}
		var w Withdrawal
		var err error
		if w.Index, err = uint64Field(c.Children[0]); err != nil {
			return nil, err
		}
		if w.ValidatorIndex, err = uint64Field(c.Children[1]); err != nil {
			return nil, err
		}
		if w.Address, err = addressField(c.Children[2]); err != nil {
			return nil, err
		}
		if w.Amount, err = wordField(c.Children[3]); err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// valueFromBytes re-frames an already-encoded RLP value's bytes as a
// single tree Value, used to splice a transaction envelope's on-the-wire
// form (which may itself be a List or a Bytes) into the block's tx list.
func valueFromBytes(b []byte) rlp.Value {
	doc, err := rlp.Unpack(b)
	if err != nil {
		panic("types: transaction AsBytes produced unparseable output: " + err.Error())
	}
	v, _ := doc.One()
	return v
}
