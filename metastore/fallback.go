package metastore

import (
	"errors"

	"github.com/ipfs/go-cid"
)

// Fallback reads through an ordered list of stores, e.g. a hot
// in-memory cache in front of a slower persistent tier.
//
// Lookup order is the slice order; callers supply a fixed order so the
// retrieval strategy stays explicit. Put writes only to the first
// store, letting lower tiers fill lazily on their own schedule.
type Fallback struct {
	Tiers []Store
}

var _ Store = Fallback{}

func (f Fallback) Put(blob []byte) (cid.Cid, error) {
	if len(f.Tiers) == 0 {
		return cid.Undef, errors.New("metastore: Fallback has no tiers")
	}
	return f.Tiers[0].Put(blob)
}

func (f Fallback) Get(id cid.Cid) ([]byte, error) {
	for _, tier := range f.Tiers {
		blob, err := tier.Get(id)
		if err == nil {
			return blob, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (f Fallback) Has(id cid.Cid) bool {
	for _, tier := range f.Tiers {
		if tier.Has(id) {
			return true
		}
	}
	return false
}
