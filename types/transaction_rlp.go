package types

import "github.com/iFrostizz/rlp-go/rlp"

// payloadBytes renders the envelope's hashable payload: the bare RLP list
// for legacy, or tag_byte || rlp(struct) for a typed variant. This is the
// EIP-2718 rule's "inner" representation — distinct from AsBytes, which
// additionally wraps a typed payload as a top-level RLP byte string.
func (e *TxEnvelope) payloadBytes() []byte {
	switch {
	case e.AccessList != nil:
		return append([]byte{AccessListTxType}, encodeAccessListTx(e.AccessList)...)
	case e.DynamicFee != nil:
		return append([]byte{DynamicFeeTxType}, encodeDynamicFeeTx(e.DynamicFee)...)
	case e.Blob != nil:
		return append([]byte{BlobTxType}, encodeBlobTx(e.Blob)...)
	default:
		return encodeLegacyTx(e.Legacy)
	}
}

// AsBytes renders the envelope exactly as it appears as a top-level RLP
// document value: a bare list for legacy, or a single RLP byte string
// wrapping tag_byte || rlp(struct) for a typed variant.
func (e *TxEnvelope) AsBytes() []byte {
	if e.Legacy != nil || e.Type() == LegacyTxType {
		return e.payloadBytes()
	}
	return rlp.PackOne(rlp.NewBytes(e.payloadBytes()))
}

// TxEnvelopeFromBytes decodes a transaction envelope. A top-level List
// decodes as Legacy; a top-level Bytes is unwrapped, its first byte read
// as the EIP-2718 tag, and the remainder re-framed as a fresh document for
// the tagged variant. Any other tag is rejected with InvalidBytes.
func TxEnvelopeFromBytes(b []byte) (*TxEnvelope, error) {
	doc, err := rlp.Unpack(b)
	if err != nil {
		return nil, err
	}
	v, err := doc.One()
	if err != nil {
		return nil, err
	}

	if v.IsList() {
		tx, err := decodeLegacyTx(v.Children)
		if err != nil {
			return nil, err
		}
		return &TxEnvelope{Legacy: tx}, nil
	}

	if len(v.Bytes) < 1 {
		return nil, newRLPError(rlp.InvalidBytes, "typed transaction payload is empty")
	}
	tag := v.Bytes[0]
	if tag != AccessListTxType && tag != DynamicFeeTxType && tag != BlobTxType {
		return nil, newRLPError(rlp.InvalidBytes, "unknown transaction type tag")
	}
	inner, err := rlp.Unpack(v.Bytes[1:])
	if err != nil {
		return nil, err
	}
	innerVal, err := inner.One()
	if err != nil {
		return nil, err
	}
	if !innerVal.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "typed transaction body must be an RLP list")
	}

	switch tag {
	case AccessListTxType:
		tx, err := decodeAccessListTx(innerVal.Children)
		if err != nil {
			return nil, err
		}
		return &TxEnvelope{AccessList: tx}, nil
	case DynamicFeeTxType:
		tx, err := decodeDynamicFeeTx(innerVal.Children)
		if err != nil {
			return nil, err
		}
		return &TxEnvelope{DynamicFee: tx}, nil
	case BlobTxType:
		tx, err := decodeBlobTx(innerVal.Children)
		if err != nil {
			return nil, err
		}
		return &TxEnvelope{Blob: tx}, nil
	default:
		return nil, newRLPError(rlp.InvalidBytes, "unknown transaction type tag")
	}
}

func encodeLegacyTx(tx *LegacyTx) []byte {
	items := []rlp.Value{
		rlp.NewBytes(uint64Bytes(tx.Nonce)),
		rlp.NewBytes(tx.GasPrice.Bytes),
		rlp.NewBytes(uint64Bytes(tx.GasLimit)),
		rlp.NewBytes(tx.To.Bytes),
		rlp.NewBytes(tx.Value.Bytes),
		rlp.NewBytes(tx.Data),
		rlp.NewBytes(tx.V.Bytes),
		rlp.NewBytes(tx.R.Bytes),
		rlp.NewBytes(tx.S.Bytes),
	}
	return encPool.EncodeBatch(items)
}

func decodeLegacyTx(items []rlp.Value) (*LegacyTx, error) {
	if len(items) != 9 {
		return nil, newRLPError(rlp.InvalidLength, "legacy transaction requires exactly 9 fields")
	}
	var tx LegacyTx
	var err error
	if tx.Nonce, err = uint64Field(items[0]); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = wordField(items[1]); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = uint64Field(items[2]); err != nil {
		return nil, err
	}
	if tx.To, err = addressField(items[3]); err != nil {
		return nil, err
	}
	if tx.Value, err = wordField(items[4]); err != nil {
		return nil, err
	}
	if tx.Data, err = bytesValue(items[5]); err != nil {
		return nil, err
	}
	if tx.V, err = wordField(items[6]); err != nil {
		return nil, err
	}
	if tx.R, err = wordField(items[7]); err != nil {
		return nil, err
	}
	if tx.S, err = wordField(items[8]); err != nil {
		return nil, err
	}
	return &tx, nil
}

func encodeAccessListTx(tx *AccessListTx) []byte {
	items := []rlp.Value{
		rlp.NewBytes(tx.ChainID.Bytes),
		rlp.NewBytes(uint64Bytes(tx.Nonce)),
		rlp.NewBytes(tx.GasPrice.Bytes),
		rlp.NewBytes(uint64Bytes(tx.GasLimit)),
		rlp.NewBytes(tx.To.Bytes),
		rlp.NewBytes(tx.Value.Bytes),
		rlp.NewBytes(tx.Data),
		encodeAccessList(tx.AccessList),
		rlp.NewBytes(tx.YParity.Bytes),
		rlp.NewBytes(tx.R.Bytes),
		rlp.NewBytes(tx.S.Bytes),
	}
	return encPool.EncodeBatch(items)
}

func decodeAccessListTx(items []rlp.Value) (*AccessListTx, error) {
	if len(items) != 11 {
		return nil, newRLPError(rlp.InvalidLength, "access list transaction requires exactly 11 fields")
	}
	var tx AccessListTx
	var err error
	if tx.ChainID, err = wordField(items[0]); err != nil {
		return nil, err
	}
	if tx.Nonce, err = uint64Field(items[1]); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = wordField(items[2]); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = uint64Field(items[3]); err != nil {
		return nil, err
	}
	if tx.To, err = addressField(items[4]); err != nil {
		return nil, err
	}
	if tx.Value, err = wordField(items[5]); err != nil {
		return nil, err
	}
	if tx.Data, err = bytesValue(items[6]); err != nil {
		return nil, err
	}
	if tx.AccessList, err = decodeAccessList(items[7]); err != nil {
		return nil, err
	}
	if tx.YParity, err = wordField(items[8]); err != nil {
		return nil, err
	}
	if tx.R, err = wordField(items[9]); err != nil {
		return nil, err
	}
	if tx.S, err = wordField(items[10]); err != nil {
		return nil, err
	}
	return &tx, nil
}

func encodeDynamicFeeTx(tx *DynamicFeeTx) []byte {
	items := dynamicFeeItems(tx)
	return encPool.EncodeBatch(items)
}

func dynamicFeeItems(tx *DynamicFeeTx) []rlp.Value {
	return []rlp.Value{
		rlp.NewBytes(tx.ChainID.Bytes),
		rlp.NewBytes(uint64Bytes(tx.Nonce)),
		rlp.NewBytes(tx.MaxPriorityFeePerGas.Bytes),
		rlp.NewBytes(tx.MaxFeePerGas.Bytes),
		rlp.NewBytes(uint64Bytes(tx.GasLimit)),
		rlp.NewBytes(tx.To.Bytes),
		rlp.NewBytes(tx.Value.Bytes),
		rlp.NewBytes(tx.Data),
		encodeAccessList(tx.AccessList),
		rlp.NewBytes(tx.YParity.Bytes),
		rlp.NewBytes(tx.R.Bytes),
		rlp.NewBytes(tx.S.Bytes),
	}
}

func decodeDynamicFeeTx(items []rlp.Value) (*DynamicFeeTx, error) {
	if len(items) != 12 {
		return nil, newRLPError(rlp.InvalidLength, "dynamic fee transaction requires exactly 12 fields")
	}
	var tx DynamicFeeTx
	var err error
	if tx.ChainID, err = wordField(items[0]); err != nil {
		return nil, err
	}
	if tx.Nonce, err = uint64Field(items[1]); err != nil {
		return nil, err
	}
	if tx.MaxPriorityFeePerGas, err = wordField(items[2]); err != nil {
		return nil, err
	}
	if tx.MaxFeePerGas, err = wordField(items[3]); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = uint64Field(items[4]); err != nil {
		return nil, err
	}
	if tx.To, err = addressField(items[5]); err != nil {
		return nil, err
	}
	if tx.Value, err = wordField(items[6]); err != nil {
		return nil, err
	}
	if tx.Data, err = bytesValue(items[7]); err != nil {
		return nil, err
	}
	if tx.AccessList, err = decodeAccessList(items[8]); err != nil {
		return nil, err
	}
	if tx.YParity, err = wordField(items[9]); err != nil {
		return nil, err
	}
	if tx.R, err = wordField(items[10]); err != nil {
		return nil, err
	}
	if tx.S, err = wordField(items[11]); err != nil {
		return nil, err
	}
	return &tx, nil
}

func encodeBlobTx(tx *BlobTx) []byte {
	items := []rlp.Value{
		rlp.NewBytes(tx.ChainID.Bytes),
		rlp.NewBytes(uint64Bytes(tx.Nonce)),
		rlp.NewBytes(tx.MaxPriorityFeePerGas.Bytes),
		rlp.NewBytes(tx.MaxFeePerGas.Bytes),
		rlp.NewBytes(uint64Bytes(tx.GasLimit)),
		rlp.NewBytes(tx.To.Bytes),
		rlp.NewBytes(tx.Value.Bytes),
		rlp.NewBytes(tx.Data),
		encodeAccessList(tx.AccessList),
		rlp.NewBytes(tx.MaxFeePerBlobGas.Bytes),
		encodeWordList(tx.BlobHashes),
		rlp.NewBytes(tx.YParity.Bytes),
		rlp.NewBytes(tx.R.Bytes),
		rlp.NewBytes(tx.S.Bytes),
	}
	return encPool.EncodeBatch(items)
}

func decodeBlobTx(items []rlp.Value) (*BlobTx, error) {
	if len(items) != 14 {
		return nil, newRLPError(rlp.InvalidLength, "blob transaction requires exactly 14 fields")
	}
	var tx BlobTx
	var err error
	if tx.ChainID, err = wordField(items[0]); err != nil {
		return nil, err
	}
	if tx.Nonce, err = uint64Field(items[1]); err != nil {
		return nil, err
	}
	if tx.MaxPriorityFeePerGas, err = wordField(items[2]); err != nil {
		return nil, err
	}
	if tx.MaxFeePerGas, err = wordField(items[3]); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = uint64Field(items[4]); err != nil {
		return nil, err
	}
	if tx.To, err = addressField(items[5]); err != nil {
		return nil, err
	}
	if tx.Value, err = wordField(items[6]); err != nil {
		return nil, err
	}
	if tx.Data, err = bytesValue(items[7]); err != nil {
		return nil, err
	}
	if tx.AccessList, err = decodeAccessList(items[8]); err != nil {
		return nil, err
	}
	if tx.MaxFeePerBlobGas, err = wordField(items[9]); err != nil {
		return nil, err
	}
	if tx.BlobHashes, err = decodeWordList(items[10]); err != nil {
		return nil, err
	}
	if tx.YParity, err = wordField(items[11]); err != nil {
		return nil, err
	}
	if tx.R, err = wordField(items[12]); err != nil {
		return nil, err
	}
	if tx.S, err = wordField(items[13]); err != nil {
		return nil, err
	}
	return &tx, nil
}

func encodeAccessList(list AccessList) rlp.Value {
	entries := make([]rlp.Value, len(list))
	for i, e := range list {
		entries[i] = rlp.NewList(
			rlp.NewBytes(e.Address.Bytes),
			encodeWordList(e.StorageKeys),
		)
	}
	return rlp.NewList(entries...)
}

func decodeAccessList(v rlp.Value) (AccessList, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "access list must be an RLP list")
	}
	out := make(AccessList, len(v.Children))
	for i, entry := range v.Children {
		if !entry.IsList() || entry.Len() != 2 {
			return nil, newRLPError(rlp.InvalidLength, "access list entry requires exactly 2 fields")
		}
		addr, err := addressField(entry.Children[0])
		if err != nil {
			return nil, err
		}
		keys, err := decodeWordList(entry.Children[1])
		if err != nil {
			return nil, err
		}
		out[i] = AccessEntry{Address: addr, StorageKeys: keys}
	}
	return out, nil
}
