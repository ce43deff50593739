// Package rlp implements the Ethereum Recursive-Length-Prefix encoding: a
// canonical tree of byte strings and lists (the L1 framer, Unpack/Pack), and
// a reflection-driven bridge (ToBytes/FromBytes) that projects Go structs,
// slices, and scalars onto that tree without hand-written per-type codecs.
package rlp

// Kind discriminates the three shapes an RLP value can take.
type Kind int

const (
	// KindBytes is an opaque byte string, possibly empty.
	KindBytes Kind = iota
	// KindEmptyList is the distinguished empty-list marker. It encodes
	// identically to KindBytes with an empty payload (0x80), but is kept
	// distinct in the tree so a serializer that chose to emit "empty" has
	// not lost the choice between empty-bytes and empty-list.
	KindEmptyList
	// KindList is an ordered, possibly nested, sequence of values.
	KindList
)

// Value is one node of an RLP tree: either an opaque byte string, the empty
// list marker, or an ordered list of child values.
type Value struct {
	Kind     Kind
	Bytes    []byte
	Children []Value
}

// NewBytes wraps b as a Bytes value. A nil slice is treated as empty.
func NewBytes(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{Kind: KindBytes, Bytes: b}
}

// NewList wraps children as a List value.
func NewList(children ...Value) Value {
	return Value{Kind: KindList, Children: children}
}

// EmptyListValue is the distinguished empty-list marker.
var EmptyListValue = Value{Kind: KindEmptyList}

// IsBytes reports whether v is a Bytes value.
func (v Value) IsBytes() bool { return v.Kind == KindBytes }

// IsList reports whether v is a List or the EmptyList marker.
func (v Value) IsList() bool { return v.Kind == KindList || v.Kind == KindEmptyList }

// Len returns the number of children for a List value (0 for EmptyList and
// Bytes values).
func (v Value) Len() int {
	if v.Kind == KindList {
		return len(v.Children)
	}
	return 0
}

// Document is an ordered sequence of top-level RLP values. In practice a
// caller expects exactly one top-level value, but the framer preserves the
// stream shape so that Pack(Unpack(x)) == x for any byte slice containing
// zero or more back-to-back encoded values.
type Document []Value

// One returns the sole value of a single-value document, failing with
// TrailingBytes if more than one top-level value is present and
// MissingBytes if the document is empty.
func (d Document) One() (Value, error) {
	if len(d) == 0 {
		return Value{}, newError(MissingBytes, "empty document")
	}
	if len(d) > 1 {
		return Value{}, newError(TrailingBytes, "document has more than one top-level value")
	}
	return d[0], nil
}
