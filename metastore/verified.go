package metastore

import (
	"github.com/ipfs/go-cid"

	"polkameta.dev/framemeta/metacid"
)

// Verified wraps a Store and re-derives the CID of every blob read,
// failing with ErrMismatch when the bytes do not hash to the requested
// identifier. Use it over tiers whose integrity you do not control.
type Verified struct {
	Inner Store
}

var _ Store = Verified{}

func (v Verified) Put(blob []byte) (cid.Cid, error) {
	return v.Inner.Put(blob)
}

func (v Verified) Get(id cid.Cid) ([]byte, error) {
	blob, err := v.Inner.Get(id)
	if err != nil {
		return nil, err
	}
	got, err := metacid.FromBytes(blob)
	if err != nil {
		return nil, err
	}
	if !got.Equals(id) {
		return nil, ErrMismatch
	}
	return blob, nil
}

func (v Verified) Has(id cid.Cid) bool {
	return v.Inner.Has(id)
}
