// Package v12 defines the V12 runtime metadata schema. It is the direct
// predecessor of v13 and differs mainly in lacking the n-key storage map
// shape.
package v12

// Metadata is a V12 runtime metadata document.
type Metadata struct {
	Modules   []Module  `json:"modules"`
	Extrinsic Extrinsic `json:"extrinsic"`
}

// Module describes one runtime module.
type Module struct {
	Name      string          `json:"name"`
	Storage   *Storage        `json:"storage,omitempty"`
	Calls     []Function      `json:"calls,omitempty"`
	Event     []Event         `json:"event,omitempty"`
	Constants []Constant      `json:"constants"`
	Errors    []ErrorMetadata `json:"errors"`
	Index     uint8           `json:"index"`
}

// Storage is all storage metadata of one module.
type Storage struct {
	Prefix  string         `json:"prefix"`
	Entries []StorageEntry `json:"entries"`
}

// StorageEntry is the metadata of one storage item.
type StorageEntry struct {
	Name          string               `json:"name"`
	Modifier      StorageEntryModifier `json:"modifier"`
	Type          StorageEntryType     `json:"type"`
	Default       []byte               `json:"default"`
	Documentation []string             `json:"documentation"`
}

// StorageEntryModifier states what fetching an absent key yields.
type StorageEntryModifier string

const (
	ModifierOptional StorageEntryModifier = "Optional"
	ModifierDefault  StorageEntryModifier = "Default"
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
// is set.
type StorageEntryType struct {
	Plain     *StoragePlain     `json:"plain,omitempty"`
	Map       *StorageMap       `json:"map,omitempty"`
	DoubleMap *StorageDoubleMap `json:"doubleMap,omitempty"`
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
	Unused bool          `json:"unused"`
}

// StorageDoubleMap is a two-key map with an independent hasher per key.
type StorageDoubleMap struct {
	Hasher     StorageHasher `json:"hasher"`
	Key1       string        `json:"key1"`
	Key2       string        `json:"key2"`
	Value      string        `json:"value"`
	Key2Hasher StorageHasher `json:"key2Hasher"`
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

// Event is one event a module can deposit.
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

// ErrorMetadata is one module error.
type ErrorMetadata struct {
	Name          string   `json:"name"`
	Documentation []string `json:"documentation"`
}

// Extrinsic describes the extrinsic format understood by the runtime.
type Extrinsic struct {
	Version          uint8    `json:"version"`
	SignedExtensions []string `json:"signedExtensions"`
}
