// Package metacid derives content identifiers for metadata documents.
//
// A CID pins an exact metadata revision: two nodes can compare CIDs to
// decide whether they agree on the runtime's interface without shipping
// the full document.
package metacid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"polkameta.dev/framemeta/metadata"
)

// FromBytes returns a CIDv1 (raw + sha2-256) over an encoded metadata
// blob, typically the opaque bytes fetched from a node.
func FromBytes(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// FromDocument returns the CID of a prefixed document's canonical JSON
// encoding. Equal documents always produce equal CIDs.
func FromDocument(p metadata.Prefixed) (cid.Cid, error) {
	data, err := p.ToJSON()
	if err != nil {
		return cid.Undef, err
	}
	return FromBytes(data)
}

// String is FromBytes with the error folded away for display contexts.
func String(data []byte) string {
	c, err := FromBytes(data)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return c.String()
}
