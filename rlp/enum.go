package rlp

// Enum is an optional interface a type can implement to drive the bridge's
// enum lowering rules: unit variant -> variant name as Bytes, newtype
// variant -> List[discriminator, inner value], tuple/struct variant ->
// List[discriminator, List of fields]. The newtype and tuple/struct forms
// are always wrapped in that outer two-element List; the bridge does not
// emit the discriminator and payload as separate items at the enclosing
// nesting level.
//
// No type in this module's domain layer (types.TxEnvelope, types.Header)
// implements Enum: their real discriminators are a numeric EIP-2718 tag
// byte and a raw header field count, neither of which is the
// variant-name-based tagging this interface models. Enum exists so the
// bridge's enum contract is complete and independently testable; see
// bridge_enum_test.go.
type Enum interface {
	// RLPVariant returns the variant's name (empty for the "transparent"
	// index-tagged case) and its payload values, in declaration order.
	// A unit variant returns (name, nil). A newtype variant returns
	// (name, []interface{}{inner}). A tuple/struct variant returns
	// (name, fields).
	RLPVariant() (name string, fields []interface{})
}

// EnumFactory reconstructs an Enum value from a decoded variant name and
// its raw field trees. Implemented by a pointer to the enum's container
// type so FromBytes can fill it in.
type EnumFactory interface {
	Enum
	// SetRLPVariant is given the variant name read from the wire and the
	// remaining field values (already List-entered if the variant is a
	// tuple/struct variant); it must populate the receiver accordingly.
	SetRLPVariant(name string, fields []Value) error
}
