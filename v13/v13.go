// Package v13 defines the V13 runtime metadata schema. V13 has no type
// registry: every key and value position carries the display name of its
// type as a plain string, flattened at the time the metadata was
// produced (or converted down from a newer generation).
package v13

// Metadata is a V13 runtime metadata document.
type Metadata struct {
	// Metadata of all the modules, in runtime declaration order.
	Modules []Module `json:"modules"`
	// Metadata of the extrinsic format.
	Extrinsic Extrinsic `json:"extrinsic"`
}

// Module describes one runtime module: its storage, dispatchable
// functions, events, constants and errors.
type Module struct {
	Name string `json:"name"`
	// Storage is nil when the module declares no storage.
	Storage *Storage `json:"storage,omitempty"`
	// Calls is nil when the module has no dispatchables; an empty
	// non-nil slice means a present but empty call list. Encoded as
	// null vs [] so the distinction survives a JSON round trip.
	Calls []Function `json:"calls"`
	// Event is nil when the module declares no events.
	Event     []Event         `json:"event"`
	Constants []Constant      `json:"constants"`
	Errors    []ErrorMetadata `json:"errors"`
	// Index is used for encoding module event, call and origin variants.
	Index uint8 `json:"index"`
}

// Storage is all storage metadata of one module.
type Storage struct {
	// Prefix is the common prefix used by all entries of the module.
	Prefix  string         `json:"prefix"`
	Entries []StorageEntry `json:"entries"`
}

// StorageEntry is the metadata of one storage item.
type StorageEntry struct {
	Name     string               `json:"name"`
	Modifier StorageEntryModifier `json:"modifier"`
	Type     StorageEntryType     `json:"type"`
	// Default is the SCALE-encoded default value.
	Default       []byte   `json:"default"`
	Documentation []string `json:"documentation"`
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
// is set. Map arity is encoded structurally: one key type per variant.
type StorageEntryType struct {
	Plain     *StoragePlain     `json:"plain,omitempty"`
	Map       *StorageMap       `json:"map,omitempty"`
	DoubleMap *StorageDoubleMap `json:"doubleMap,omitempty"`
	NMap      *StorageNMap      `json:"nMap,omitempty"`
}

// StoragePlain is a single stored value.
type StoragePlain struct {
	Value string `json:"value"`
}

// StorageMap is a single-key map.
type StorageMap struct {
	Hasher StorageHasher `json:"hasher"`
	Key    string        `json:"key"`
	Value  string        `json:"value"`
	// Unused was the is_linked flag of older generations; kept for
	// backwards compatibility of the encoded form, always false now.
	Unused bool `json:"unused"`
}

// StorageDoubleMap is a two-key map with an independent hasher per key.
type StorageDoubleMap struct {
	Hasher     StorageHasher `json:"hasher"`
	Key1       string        `json:"key1"`
	Key2       string        `json:"key2"`
	Value      string        `json:"value"`
	Key2Hasher StorageHasher `json:"key2Hasher"`
}

// StorageNMap is a map over three or more keys.
type StorageNMap struct {
	Keys    []string        `json:"keys"`
	Hashers []StorageHasher `json:"hashers"`
	Value   string          `json:"value"`
}

// Function is one dispatchable call of a module.
type Function struct {
	Name          string             `json:"name"`
	Arguments     []FunctionArgument `json:"arguments"`
	Documentation []string           `json:"documentation"`
}

// FunctionArgument is one named argument of a dispatchable call.
type FunctionArgument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Event is one event a module can deposit. Arguments are type display
// names only; V13 events carry no argument names.
type Event struct {
	Name          string   `json:"name"`
	Arguments     []string `json:"arguments"`
	Documentation []string `json:"documentation"`
}

// Constant is one module constant with its encoded value.
type Constant struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Value         []byte   `json:"value"`
	Documentation []string `json:"documentation"`
}

// ErrorMetadata is one module error. Errors carry no argument types in
// this generation, only a name and documentation.
type ErrorMetadata struct {
	Name          string   `json:"name"`
	Documentation []string `json:"documentation"`
}

// Extrinsic describes the extrinsic format understood by the runtime.
type Extrinsic struct {
	Version uint8 `json:"version"`
	// SignedExtensions lists extension identifiers in the order they
	// appear in the extrinsic.
	SignedExtensions []string `json:"signedExtensions"`
}
