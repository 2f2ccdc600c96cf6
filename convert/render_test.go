package convert

import (
	"testing"

	"polkameta.dev/framemeta/scaleinfo"
	"polkameta.dev/framemeta/v14"
)

// Extra identifiers for rendering fixtures, above the shared block.
const (
	idArrayU8 scaleinfo.TypeID = 20 + iota
	idVecAccount
	idEmptyTuple
	idBitOrder
	idBitStore
	idBitVec
	idNestedVec
	idAnonComposite
	idBool
)

func renderConverter(t *testing.T) *converter {
	t.Helper()
	r := testRegistry(t)
	r.Register(idArrayU8, scaleinfo.Type{Def: scaleinfo.TypeDef{Array: &scaleinfo.ArrayType{Len: 32, Elem: idBitStore}}})
	r.Register(idVecAccount, scaleinfo.Type{Def: scaleinfo.TypeDef{Sequence: &scaleinfo.SequenceType{Elem: idAccountID}}})
	r.Register(idEmptyTuple, scaleinfo.Type{Def: scaleinfo.TypeDef{Tuple: &scaleinfo.TupleType{}}})
	r.Register(idBitOrder, scaleinfo.Type{
		Path: scaleinfo.Path{"bitvec", "order", "Lsb0"},
		Def:  scaleinfo.TypeDef{Composite: &scaleinfo.CompositeType{}},
	})
	r.Register(idBitStore, scaleinfo.Type{Def: scaleinfo.TypeDef{Primitive: primPtr(scaleinfo.U8)}})
	r.Register(idBitVec, scaleinfo.Type{Def: scaleinfo.TypeDef{BitSequence: &scaleinfo.BitSequenceType{Order: idBitOrder, Store: idBitStore}}})
	r.Register(idNestedVec, scaleinfo.Type{Def: scaleinfo.TypeDef{Sequence: &scaleinfo.SequenceType{Elem: idVecU32}}})
	r.Register(idAnonComposite, scaleinfo.Type{Def: scaleinfo.TypeDef{Composite: &scaleinfo.CompositeType{}}})
	r.Register(idBool, scaleinfo.Type{Def: scaleinfo.TypeDef{Primitive: primPtr(scaleinfo.Bool)}})
	return &converter{meta: &v14.Metadata{Types: r}}
}

func TestTypeIdentPrimitives(t *testing.T) {
	c := renderConverter(t)
	cases := []struct {
		id   scaleinfo.TypeID
		want string
	}{
		{idBool, "bool"},
		{idU32, "u32"},
		{idU64, "u64"},
		{idU128, "u128"},
	}
	for _, tc := range cases {
		got, err := c.typeIdent(tc.id)
		if err != nil {
			t.Fatalf("ident %d: %v", tc.id, err)
		}
		if got != tc.want {
			t.Errorf("ident %d: expected %q, got %q", tc.id, tc.want, got)
		}
	}
}

func TestPrimitiveIdentWideIntegers(t *testing.T) {
	// The 256-bit integers are the two names the classic format
	// capitalizes.
	if got := primitiveIdent(scaleinfo.U256); got != "U256" {
		t.Errorf("expected U256, got %q", got)
	}
	if got := primitiveIdent(scaleinfo.I256); got != "I256" {
		t.Errorf("expected I256, got %q", got)
	}
	if got := primitiveIdent(scaleinfo.U128); got != "u128" {
		t.Errorf("expected u128, got %q", got)
	}
}

func TestTypeIdentCompound(t *testing.T) {
	c := renderConverter(t)
	cases := []struct {
		id   scaleinfo.TypeID
		want string
	}{
		{idVecU32, "Vec<u32>"},
		{idNestedVec, "Vec<Vec<u32>>"},
		{idArrayU8, "[u8; 32]"},
		{idKeyPair, "(u32, u64)"},
		{idEmptyTuple, "()"},
		{idCompactU128, "Compact<u128>"},
		{idBitVec, "BitVec<Lsb0, u8>"},
		{idVecAccount, "Vec<AccountId32>"},
		{idAccountID, "AccountId32"},
		{idBalancesCall, "Call"},
	}
	for _, tc := range cases {
		got, err := c.typeIdent(tc.id)
		if err != nil {
			t.Fatalf("ident %d: %v", tc.id, err)
		}
		if got != tc.want {
			t.Errorf("ident %d: expected %q, got %q", tc.id, tc.want, got)
		}
	}
}

func TestTypeIdentMissingName(t *testing.T) {
	c := renderConverter(t)
	_, err := c.typeIdent(idAnonComposite)
	if !IsKind(err, KindMissingTypeName) {
		t.Fatalf("expected MissingTypeName, got %v", err)
	}
}

func TestTypeIdentNotFound(t *testing.T) {
	c := renderConverter(t)
	_, err := c.typeIdent(9999)
	if !IsKind(err, KindTypeNotFound) {
		t.Fatalf("expected TypeNotFound, got %v", err)
	}
}

func TestTypeIdentDeterministic(t *testing.T) {
	c := renderConverter(t)
	first, err := c.typeIdent(idNestedVec)
	if err != nil {
		t.Fatalf("ident: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := c.typeIdent(idNestedVec)
		if err != nil {
			t.Fatalf("ident: %v", err)
		}
		if again != first {
			t.Fatalf("rendering not stable: %q != %q", again, first)
		}
	}
}

func TestFieldTypeNameFallback(t *testing.T) {
	c := renderConverter(t)
	// No declared name: fall back to rendering the referenced type.
	got, err := c.fieldTypeName(scaleinfo.Field{Type: idVecU32})
	if err != nil {
		t.Fatalf("field name: %v", err)
	}
	if got != "Vec<u32>" {
		t.Errorf("expected Vec<u32>, got %q", got)
	}
}

func TestFieldTypeNameCompactWrap(t *testing.T) {
	c := renderConverter(t)
	got, err := c.fieldTypeName(scaleinfo.Field{Type: idCompactU128, TypeName: "BalanceOf<T>"})
	if err != nil {
		t.Fatalf("field name: %v", err)
	}
	if got != "Compact<BalanceOf<T>>" {
		t.Errorf("expected Compact<BalanceOf<T>>, got %q", got)
	}
}
