// Package v14 defines the V14 runtime metadata schema, the first
// generation in portable form: all type information lives in a shared
// type registry and every type position is a registry id. Calls, events
// and errors of a pallet are each described by a single registered enum
// type rather than explicit item lists.
package v14

import "polkameta.dev/framemeta/scaleinfo"

// Metadata is a V14 runtime metadata document.
type Metadata struct {
	// Types is the registry holding every type referenced below.
	Types *scaleinfo.Registry `json:"types"`
	// Pallets in runtime declaration order.
	Pallets []Pallet `json:"pallets"`
	// Extrinsic is the metadata of the extrinsic format.
	Extrinsic Extrinsic `json:"extrinsic"`
	// Type is the registered type of the outer Runtime.
	Type scaleinfo.TypeID `json:"type"`
}

// Pallet is the metadata of one runtime pallet.
type Pallet struct {
	Name      string         `json:"name"`
	Storage   *PalletStorage `json:"storage,omitempty"`
	Calls     *PalletCall    `json:"calls,omitempty"`
	Event     *PalletEvent   `json:"event,omitempty"`
	Constants []Constant     `json:"constants"`
	Error     *PalletError   `json:"error,omitempty"`
	// Index is used for encoding pallet event, call and origin variants.
	Index uint8 `json:"index"`
}

// PalletStorage is all storage metadata of one pallet.
type PalletStorage struct {
	// Prefix is the common prefix used by all entries of the pallet.
	Prefix  string         `json:"prefix"`
	Entries []StorageEntry `json:"entries"`
}

// StorageEntry is the metadata of one storage item.
type StorageEntry struct {
	Name     string               `json:"name"`
	Modifier StorageEntryModifier `json:"modifier"`
	Type     StorageEntryType     `json:"type"`
	// Default is the SCALE-encoded default value.
	Default []byte   `json:"default"`
	Docs    []string `json:"docs"`
}

// StorageEntryModifier states what fetching an absent key yields.
type StorageEntryModifier string

const (
	// ModifierOptional entries yield nothing for an absent key.
	ModifierOptional StorageEntryModifier = "Optional"
	// ModifierDefault entries yield the encoded default value.
	ModifierDefault StorageEntryModifier = "Default"
)

// StorageHasher is a key-hashing strategy for storage maps.
type StorageHasher string

const (
	Blake2_128       StorageHasher = "Blake2_128"
	Blake2_256       StorageHasher = "Blake2_256"
	Blake2_128Concat StorageHasher = "Blake2_128Concat"
	Twox128          StorageHasher = "Twox128"
	Twox256          StorageHasher = "Twox256"
	Twox64Concat     StorageHasher = "Twox64Concat"
	Identity         StorageHasher = "Identity"
)

// StorageEntryType is the shape of one storage entry. Exactly one field
// is set. Map arity is carried uniformly by the hasher count of the Map
// shape; the explicit DoubleMap and NMap shapes only occur in documents
// produced by earlier revisions of this generation.
type StorageEntryType struct {
	Plain     *StoragePlain     `json:"plain,omitempty"`
	Map       *StorageMap       `json:"map,omitempty"`
	DoubleMap *StorageDoubleMap `json:"doubleMap,omitempty"`
	NMap      *StorageNMap      `json:"nMap,omitempty"`
}

// StoragePlain is a single stored value.
type StoragePlain struct {
	Value scaleinfo.TypeID `json:"value"`
}

// StorageMap is a storage map with one hasher per key element. Key may
// resolve to a tuple (one element per hasher) or to a single type.
type StorageMap struct {
	Hashers []StorageHasher  `json:"hashers"`
	Key     scaleinfo.TypeID `json:"key"`
	Value   scaleinfo.TypeID `json:"value"`
}

// StorageDoubleMap is the legacy explicit two-key shape.
type StorageDoubleMap struct {
	Hasher     StorageHasher    `json:"hasher"`
	Key1       scaleinfo.TypeID `json:"key1"`
	Key2       scaleinfo.TypeID `json:"key2"`
	Value      scaleinfo.TypeID `json:"value"`
	Key2Hasher StorageHasher    `json:"key2Hasher"`
}

// StorageNMap is the legacy explicit n-key shape. Keys references a
// tuple of key types, or a single key type.
type StorageNMap struct {
	Keys    scaleinfo.TypeID `json:"keys"`
	Hashers []StorageHasher  `json:"hashers"`
	Value   scaleinfo.TypeID `json:"value"`
}

// PalletCall references the enum type whose variants are the pallet's
// dispatchable calls.
type PalletCall struct {
	Type scaleinfo.TypeID `json:"type"`
}

// PalletEvent references the enum type whose variants are the pallet's
// events.
type PalletEvent struct {
	Type scaleinfo.TypeID `json:"type"`
}

// PalletError references the enum type whose variants are the pallet's
// errors.
type PalletError struct {
	Type scaleinfo.TypeID `json:"type"`
}

// Constant is one pallet constant with its encoded value.
type Constant struct {
	Name string           `json:"name"`
	Type scaleinfo.TypeID `json:"type"`
	// Value is the SCALE-encoded constant value.
	Value []byte   `json:"value"`
	Docs  []string `json:"docs"`
}

// Extrinsic describes the extrinsic format understood by the runtime.
type Extrinsic struct {
	// Type is the registered type of the extrinsic.
	Type    scaleinfo.TypeID `json:"type"`
	Version uint8            `json:"version"`
	// SignedExtensions in the order they appear in the extrinsic.
	SignedExtensions []SignedExtension `json:"signedExtensions"`
}

// SignedExtension is one extension attached to the extrinsic beyond its
// core call.
type SignedExtension struct {
	// Identifier is the unique extension identifier, which may differ
	// from the type name.
	Identifier string           `json:"identifier"`
	Type       scaleinfo.TypeID `json:"type"`
	// AdditionalSigned is the type of the extra data folded into the
	// signed payload.
	AdditionalSigned scaleinfo.TypeID `json:"additionalSigned"`
}
