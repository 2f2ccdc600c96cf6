package metastore

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"

	"polkameta.dev/framemeta/metacid"
)

func TestMemoryPutGet(t *testing.T) {
	var m Memory
	blob := []byte("encoded metadata v14")
	id, err := m.Put(blob)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	want, _ := metacid.FromBytes(blob)
	if !id.Equals(want) {
		t.Fatalf("put returned %s, expected %s", id, want)
	}
	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("bytes changed: %q", got)
	}
	if !m.Has(id) {
		t.Errorf("Has should report stored blobs")
	}
}

func TestMemoryPutIdempotent(t *testing.T) {
	var m Memory
	blob := []byte("same blob")
	a, err := m.Put(blob)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	b, err := m.Put(blob)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("idempotent put gave different CIDs: %s %s", a, b)
	}
}

func TestMemoryGetCopies(t *testing.T) {
	var m Memory
	id, err := m.Put([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ := m.Get(id)
	got[0] = 9
	again, _ := m.Get(id)
	if again[0] != 1 {
		t.Fatalf("stored blob was mutated through a Get result")
	}
}

func TestMemoryGetMissing(t *testing.T) {
	var m Memory
	other, _ := metacid.FromBytes([]byte("never stored"))
	if _, err := m.Get(other); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if m.Has(other) {
		t.Errorf("Has should be false for absent blobs")
	}
}

func TestFallbackOrder(t *testing.T) {
	hot, cold := new(Memory), new(Memory)
	blob := []byte("only in the cold tier")
	id, err := cold.Put(blob)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	f := Fallback{Tiers: []Store{hot, cold}}
	got, err := f.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("wrong bytes: %q", got)
	}
	if !f.Has(id) {
		t.Errorf("Has should search all tiers")
	}
	// Writes land in the first tier only.
	id2, err := f.Put([]byte("new blob"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !hot.Has(id2) || cold.Has(id2) {
		t.Errorf("Put should write the first tier only")
	}
}

func TestFallbackEmpty(t *testing.T) {
	var f Fallback
	if _, err := f.Put([]byte("x")); err == nil {
		t.Fatalf("expected an error with no tiers")
	}
	id, _ := metacid.FromBytes([]byte("x"))
	if _, err := f.Get(id); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVerifiedDetectsCorruption(t *testing.T) {
	inner := new(Memory)
	blob := []byte("pristine")
	id, err := inner.Put(blob)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	v := Verified{Inner: inner}
	if _, err := v.Get(id); err != nil {
		t.Fatalf("get pristine: %v", err)
	}
	// Corrupt the mapping: store different bytes under the old id.
	corrupted := corruptStore{Memory: inner, id: id, blob: []byte("tampered")}
	if _, err := (Verified{Inner: corrupted}).Get(id); err != ErrMismatch {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

// corruptStore serves fixed wrong bytes for one id.
type corruptStore struct {
	*Memory
	id   cid.Cid
	blob []byte
}

func (c corruptStore) Get(id cid.Cid) ([]byte, error) {
	if id.Equals(c.id) {
		return c.blob, nil
	}
	return c.Memory.Get(id)
}
