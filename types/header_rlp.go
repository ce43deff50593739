package types

import (
	"github.com/iFrostizz/rlp-go/primitives"
	"github.com/iFrostizz/rlp-go/rlp"
)

// commonFieldValues renders the 15 common fields as tree Values in their
// canonical wire order.
func commonFieldValues(c *Common) []rlp.Value {
	return []rlp.Value{
		rlp.NewBytes(c.ParentHash.Bytes),
		rlp.NewBytes(c.UncleHash.Bytes),
		rlp.NewBytes(c.Coinbase.Bytes),
		rlp.NewBytes(c.StateRoot.Bytes),
		rlp.NewBytes(c.TxRoot.Bytes),
		rlp.NewBytes(c.ReceiptHash.Bytes),
		rlp.NewBytes(c.Bloom.Bytes),
		rlp.NewBytes(c.Difficulty.Bytes),
		rlp.NewBytes(c.Number.Bytes),
		rlp.NewBytes(c.GasLimit.Bytes),
		rlp.NewBytes(c.GasUsed.Bytes),
		rlp.NewBytes(c.Time.Bytes),
		rlp.NewBytes(c.Extra),
		rlp.NewBytes(c.MixDigest.Bytes),
		rlp.NewBytes(c.Nonce.Bytes),
	}
}

// EncodeRLP renders the Legacy header: the 15 common fields, list-wrapped.
func (h *LegacyHeader) EncodeRLP() []byte {
	return encodeHeaderList(commonFieldValues(&h.Common))
}

// EncodeRLP renders the London header: common fields plus base_fee.
func (h *LondonHeader) EncodeRLP() []byte {
	items := commonFieldValues(&h.Common)
	items = append(items, rlp.NewBytes(h.BaseFee.Bytes))
	return encodeHeaderList(items)
}

// EncodeRLP renders the Shanghai header: common fields, base_fee,
// withdrawal_root.
func (h *ShanghaiHeader) EncodeRLP() []byte {
	items := commonFieldValues(&h.Common)
	items = append(items, rlp.NewBytes(h.BaseFee.Bytes), rlp.NewBytes(h.WithdrawalRoot.Bytes))
	return encodeHeaderList(items)
}

// EncodeRLP renders the Cancun header: common fields, base_fee,
// withdrawal_root, blob_gas_used, excess_blob_gas, parent_beacon_block_root.
func (h *CancunHeader) EncodeRLP() []byte {
	items := commonFieldValues(&h.Common)
	items = append(items,
		rlp.NewBytes(h.BaseFee.Bytes),
		rlp.NewBytes(h.WithdrawalRoot.Bytes),
		rlp.NewBytes(h.BlobGasUsed.Bytes),
		rlp.NewBytes(h.ExcessBlobGas.Bytes),
		rlp.NewBytes(h.ParentBeaconBlockRoot.Bytes),
	)
	return encodeHeaderList(items)
}

// EncodeRLP renders the Unknown header: common fields plus whatever
// trailing opaque byte strings were retained on decode.
func (h *UnknownHeader) EncodeRLP() []byte {
	items := commonFieldValues(&h.Common)
	for _, t := range h.Trailing {
		items = append(items, rlp.NewBytes(t))
	}
	return encodeHeaderList(items)
}

func encodeHeaderList(items []rlp.Value) []byte {
	return encPool.EncodeBatch(items)
}

// HeaderFromBytes decodes a header strictly: only the 15/16/17/20 field
// counts are accepted; any other count >= 15 is rejected with
// TrailingBytes, and any count < 15 is rejected as InvalidLength.
func HeaderFromBytes(b []byte) (Header, error) {
	return decodeHeader(b, false)
}

// HeaderFromBytesPermissive decodes a header permissively: a field count
// that does not match a known fork promotes to UnknownHeader instead of
// failing, per the header-decoding Open Question.
func HeaderFromBytesPermissive(b []byte) (Header, error) {
	return decodeHeader(b, true)
}

func decodeHeader(b []byte, permissive bool) (Header, error) {
	doc, err := rlp.Unpack(b)
	if err != nil {
		return nil, err
	}
	v, err := doc.One()
	if err != nil {
		return nil, err
	}
	return decodeHeaderValue(v, permissive)
}

// decodeHeaderValue decodes a header that is already a tree Value
// (typically one item of a Block's outer list), without a fresh Unpack
// pass.
func decodeHeaderValue(v rlp.Value, permissive bool) (Header, error) {
	if !v.IsList() {
		return nil, newRLPError(rlp.ExpectedList, "header must be an RLP list")
	}
	items := v.Children
	if len(items) < 15 {
		return nil, newRLPError(rlp.InvalidLength, "header has fewer than the 15 common fields")
	}

	common, err := fieldsToCommon(items[:15])
	if err != nil {
		return nil, err
	}

	switch len(items) {
	case 15:
		return &LegacyHeader{Common: common}, nil
	case 16:
		baseFee, err := wordField(items[15])
		if err != nil {
			return nil, err
		}
		return &LondonHeader{Common: common, BaseFee: baseFee}, nil
	case 17:
		baseFee, err := wordField(items[15])
		if err != nil {
			return nil, err
		}
		withdrawalRoot, err := wordField(items[16])
		if err != nil {
			return nil, err
		}
		return &ShanghaiHeader{
			Common:         common,
			BaseFee:        baseFee,
			WithdrawalRoot: withdrawalRoot,
		}, nil
	case 20:
		vals := make([]primitives.Word, 5)
		for i := 0; i < 5; i++ {
			w, err := wordField(items[15+i])
			if err != nil {
				return nil, err
			}
			vals[i] = w
		}
		return &CancunHeader{
			Common:                common,
			BaseFee:               vals[0],
			WithdrawalRoot:        vals[1],
			BlobGasUsed:           vals[2],
			ExcessBlobGas:         vals[3],
			ParentBeaconBlockRoot: vals[4],
		}, nil
	default:
		if !permissive {
			return nil, newRLPError(rlp.TrailingBytes, "header field count matches no known fork variant")
		}
		trailing := make([][]byte, 0, len(items)-15)
		for _, it := range items[15:] {
			fb, err := bytesValue(it)
			if err != nil {
				return nil, err
			}
			trailing = append(trailing, fb)
		}
		return &UnknownHeader{Common: common, Trailing: trailing}, nil
	}
}

func fieldsToCommon(items []rlp.Value) (Common, error) {
	var c Common
	var err error
	if c.ParentHash, err = wordField(items[0]); err != nil {
		return c, err
	}
	if c.UncleHash, err = wordField(items[1]); err != nil {
		return c, err
	}
	if c.Coinbase, err = addressField(items[2]); err != nil {
		return c, err
	}
	if c.StateRoot, err = wordField(items[3]); err != nil {
		return c, err
	}
	if c.TxRoot, err = wordField(items[4]); err != nil {
		return c, err
	}
	if c.ReceiptHash, err = wordField(items[5]); err != nil {
		return c, err
	}
	if c.Bloom, err = bloomField(items[6]); err != nil {
		return c, err
	}
	if c.Difficulty, err = wordField(items[7]); err != nil {
		return c, err
	}
	if c.Number, err = wordField(items[8]); err != nil {
		return c, err
	}
	if c.GasLimit, err = wordField(items[9]); err != nil {
		return c, err
	}
	if c.GasUsed, err = wordField(items[10]); err != nil {
		return c, err
	}
	if c.Time, err = wordField(items[11]); err != nil {
		return c, err
	}
	if c.Extra, err = bytesValue(items[12]); err != nil {
		return c, err
	}
	if c.MixDigest, err = wordField(items[13]); err != nil {
		return c, err
	}
	if c.Nonce, err = nonceField(items[14]); err != nil {
		return c, err
	}
	return c, nil
}

func bytesValue(v rlp.Value) ([]byte, error) {
	if !v.IsBytes() {
		return nil, newRLPError(rlp.ExpectedBytes, "expected a Bytes value")
	}
	return v.Bytes, nil
}
