package scaleinfo

// TypeID addresses one resolved type in a Registry.
type TypeID uint32

// Path is the namespaced name of a declared type, e.g.
// ["pallet_balances", "pallet", "Call"]. Anonymous types (tuples,
// sequences, primitives) have an empty path.
type Path []string

// Ident returns the final path segment, the type's declared identifier,
// or "" for an anonymous type.
func (p Path) Ident() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Type is one resolved type descriptor.
type Type struct {
	Path Path     `json:"path,omitempty"`
	Def  TypeDef  `json:"def"`
	Docs []string `json:"docs,omitempty"`
}

// TypeDef is the shape of a type. Exactly one field is set.
type TypeDef struct {
	Composite   *CompositeType   `json:"composite,omitempty"`
	Variant     *VariantType     `json:"variant,omitempty"`
	Sequence    *SequenceType    `json:"sequence,omitempty"`
	Array       *ArrayType       `json:"array,omitempty"`
	Tuple       *TupleType       `json:"tuple,omitempty"`
	Primitive   *Primitive       `json:"primitive,omitempty"`
	Compact     *CompactType     `json:"compact,omitempty"`
	BitSequence *BitSequenceType `json:"bitSequence,omitempty"`
}

// CompositeType is a product type (struct) with named or unnamed fields.
type CompositeType struct {
	Fields []Field `json:"fields,omitempty"`
}

// VariantType is a sum type (enum) of tagged alternatives.
type VariantType struct {
	Variants []Variant `json:"variants,omitempty"`
}

// SequenceType is a variable-length sequence of one element type.
type SequenceType struct {
	Elem TypeID `json:"type"`
}

// ArrayType is a fixed-length array of one element type.
type ArrayType struct {
	Len  uint32 `json:"len"`
	Elem TypeID `json:"type"`
}

// TupleType is an anonymous product of element types. A zero-length
// tuple is the unit type.
type TupleType struct {
	Elems []TypeID `json:"elems"`
}

// CompactType marks its element as compact (variable-length) encoded.
type CompactType struct {
	Elem TypeID `json:"type"`
}

// BitSequenceType is a sequence of bits with an explicit bit ordering
// type and a backing store type.
type BitSequenceType struct {
	Order TypeID `json:"bitOrderType"`
	Store TypeID `json:"bitStoreType"`
}

// Primitive is a built-in scalar type.
type Primitive string

const (
	Bool Primitive = "bool"
	Char Primitive = "char"
	Str  Primitive = "str"
	U8   Primitive = "u8"
	U16  Primitive = "u16"
	U32  Primitive = "u32"
	U64  Primitive = "u64"
	U128 Primitive = "u128"
	U256 Primitive = "u256"
	I8   Primitive = "i8"
	I16  Primitive = "i16"
	I32  Primitive = "i32"
	I64  Primitive = "i64"
	I128 Primitive = "i128"
	I256 Primitive = "i256"
)

// Field is one field of a composite or variant. Name is "" for
// positional fields. TypeName, when set, is the display name the field
// was declared with (an alias such as T::Balance), which may differ
// from the resolved type's own identifier.
type Field struct {
	Name     string   `json:"name,omitempty"`
	Type     TypeID   `json:"type"`
	TypeName string   `json:"typeName,omitempty"`
	Docs     []string `json:"docs,omitempty"`
}

// Variant is one alternative of a VariantType.
type Variant struct {
	Name   string   `json:"name"`
	Fields []Field  `json:"fields,omitempty"`
	Index  uint8    `json:"index"`
	Docs   []string `json:"docs,omitempty"`
}
