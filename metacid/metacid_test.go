package metacid

import (
	"testing"

	"github.com/ipfs/go-cid"

	"polkameta.dev/framemeta/metadata"
	"polkameta.dev/framemeta/v13"
)

func TestFromBytesDeterministic(t *testing.T) {
	data := []byte("encoded metadata blob")
	a, err := FromBytes(data)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	b, err := FromBytes(data)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("same bytes gave different CIDs: %s %s", a, b)
	}
	other, err := FromBytes([]byte("a different blob"))
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if a.Equals(other) {
		t.Fatalf("different bytes gave the same CID: %s", a)
	}
}

func TestFromBytesShape(t *testing.T) {
	c, err := FromBytes([]byte("blob"))
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if c.Version() != 1 {
		t.Errorf("expected CIDv1, got v%d", c.Version())
	}
	if c.Type() != cid.Raw {
		t.Errorf("expected raw codec, got %d", c.Type())
	}
	decoded, err := cid.Decode(c.String())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Equals(c) {
		t.Errorf("string form did not round-trip")
	}
}

func TestFromDocument(t *testing.T) {
	p := metadata.NewPrefixed(metadata.RuntimeMetadata{V13: &v13.Metadata{
		Modules:   []v13.Module{{Name: "System"}},
		Extrinsic: v13.Extrinsic{Version: 4},
	}})
	a, err := FromDocument(p)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	b, err := FromDocument(p)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("same document gave different CIDs")
	}
}

func TestStringMatchesFromBytes(t *testing.T) {
	data := []byte("blob")
	c, err := FromBytes(data)
	if err != nil {
		t.Fatalf("cid: %v", err)
	}
	if got := String(data); got != c.String() {
		t.Errorf("String() = %q, expected %q", got, c.String())
	}
}
