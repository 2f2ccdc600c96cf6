// Package metadata ties the per-version schemas together: the
// RuntimeMetadata sum type, the magic-prefixed document wrapper, JSON
// loading, and a thin facade for pallet lookups over whichever version
// a document carries.
package metadata

import (
	"encoding/json"

	"polkameta.dev/framemeta/v12"
	"polkameta.dev/framemeta/v13"
	"polkameta.dev/framemeta/v14"
	"polkameta.dev/framemeta/v16"
)

// MetaReserved is the little-endian "meta" magic prefixing every
// encoded metadata document.
const MetaReserved uint32 = 0x6174656d

// RuntimeMetadata is one metadata document of any supported version.
// Exactly one version field is set; historical versions this repository
// does not model are carried as opaque encoded bytes.
type RuntimeMetadata struct {
	V12 *v12.Metadata `json:"v12,omitempty"`
	V13 *v13.Metadata `json:"v13,omitempty"`
	V14 *v14.Metadata `json:"v14,omitempty"`
	V16 *v16.Metadata `json:"v16,omitempty"`

	// Opaque holds the raw encoded document of an unmodeled version.
	Opaque        []byte `json:"opaque,omitempty"`
	OpaqueVersion uint32 `json:"opaqueVersion,omitempty"`
}

// Version returns the document's metadata version number.
func (m RuntimeMetadata) Version() uint32 {
	switch {
	case m.V12 != nil:
		return 12
	case m.V13 != nil:
		return 13
	case m.V14 != nil:
		return 14
	case m.V16 != nil:
		return 16
	default:
		return m.OpaqueVersion
	}
}

// Prefixed is a metadata document together with its reserved magic.
type Prefixed struct {
	Magic    uint32          `json:"magic"`
	Metadata RuntimeMetadata `json:"metadata"`
}

// NewPrefixed wraps m with the standard magic.
func NewPrefixed(m RuntimeMetadata) Prefixed {
	return Prefixed{Magic: MetaReserved, Metadata: m}
}

// FromJSON decodes a JSON-encoded prefixed metadata document.
func FromJSON(data []byte) (*Prefixed, error) {
	var p Prefixed
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ToJSON encodes p without indentation.
func (p *Prefixed) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
