// Package metastore caches encoded metadata documents by content
// identifier. A runtime's metadata only changes on upgrade, so keeping
// fetched documents keyed by CID lets a client skip refetching the
// multi-megabyte blob for runtimes it has already seen.
package metastore

import (
	"errors"
	"sync"

	"github.com/ipfs/go-cid"

	"polkameta.dev/framemeta/metacid"
)

var (
	ErrNotFound = errors.New("metastore: not found")
	ErrMismatch = errors.New("metastore: cid mismatch")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// Store is content-addressed storage for encoded metadata blobs.
//
// Contract:
// - Put is idempotent and returns the CID derived from the bytes written.
// - Stored blobs are immutable.
// - Get returns ErrNotFound when the CID is absent.
type Store interface {
	Put(blob []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}

// Memory is an in-process Store. The zero value is ready to use. Safe
// for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[cid.Cid][]byte
}

var _ Store = (*Memory)(nil)

func (m *Memory) Put(blob []byte) (cid.Cid, error) {
	id, err := metacid.FromBytes(blob)
	if err != nil {
		return cid.Undef, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blobs == nil {
		m.blobs = make(map[cid.Cid][]byte)
	}
	if _, ok := m.blobs[id]; !ok {
		stored := make([]byte, len(blob))
		copy(stored, blob)
		m.blobs[id] = stored
	}
	return id, nil
}

func (m *Memory) Get(id cid.Cid) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *Memory) Has(id cid.Cid) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[id]
	return ok
}
