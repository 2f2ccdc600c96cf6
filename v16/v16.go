// Package v16 defines the V16 runtime metadata schema. Beyond the v14
// portable form it describes runtime APIs, pallet view functions and
// associated types, per-version transaction extensions, the outer enum
// types, free-form custom values, and deprecation information.
//
// This is the newest generation the repository models; no converter
// reads it, since only next-older-version conversion is supported.
package v16

import (
	"polkameta.dev/framemeta/scaleinfo"
	"polkameta.dev/framemeta/v14"
)

// Storage shapes, modifiers and hashers are unchanged since v14.
type (
	StorageEntryModifier = v14.StorageEntryModifier
	StorageHasher        = v14.StorageHasher
	StorageEntryType     = v14.StorageEntryType
)

// Metadata is a V16 runtime metadata document.
type Metadata struct {
	// Types is the registry holding every type referenced below.
	Types *scaleinfo.Registry `json:"types"`
	// Pallets in runtime declaration order.
	Pallets []Pallet `json:"pallets"`
	// Extrinsic is the metadata of the extrinsic format.
	Extrinsic Extrinsic `json:"extrinsic"`
	// APIs describes the runtime API traits.
	APIs []RuntimeAPI `json:"apis"`
	// OuterEnums references the runtime-wide call/event/error enums.
	OuterEnums OuterEnums `json:"outerEnums"`
	// Custom carries chain-specific additions keyed by name.
	Custom CustomMetadata `json:"custom"`
}

// Pallet is the metadata of one runtime pallet.
type Pallet struct {
	Name            string            `json:"name"`
	Storage         *PalletStorage    `json:"storage,omitempty"`
	Calls           *PalletCall       `json:"calls,omitempty"`
	Event           *PalletEvent      `json:"event,omitempty"`
	Constants       []Constant        `json:"constants"`
	Error           *PalletError      `json:"error,omitempty"`
	AssociatedTypes []AssociatedType  `json:"associatedTypes"`
	ViewFunctions   []ViewFunction    `json:"viewFunctions"`
	Index           uint8             `json:"index"`
	Docs            []string          `json:"docs"`
	Deprecation     DeprecationStatus `json:"deprecationInfo"`
}

// PalletStorage is all storage metadata of one pallet.
type PalletStorage struct {
	Prefix  string         `json:"prefix"`
	Entries []StorageEntry `json:"entries"`
}

// StorageEntry is the metadata of one storage item.
type StorageEntry struct {
	Name        string               `json:"name"`
	Modifier    StorageEntryModifier `json:"modifier"`
	Type        StorageEntryType     `json:"type"`
	Default     []byte               `json:"default"`
	Docs        []string             `json:"docs"`
	Deprecation DeprecationStatus    `json:"deprecationInfo"`
}

// PalletCall references the pallet's call enum type.
type PalletCall struct {
	Type        scaleinfo.TypeID `json:"type"`
	Deprecation DeprecationInfo  `json:"deprecationInfo"`
}

// PalletEvent references the pallet's event enum type.
type PalletEvent struct {
	Type        scaleinfo.TypeID `json:"type"`
	Deprecation DeprecationInfo  `json:"deprecationInfo"`
}

// PalletError references the pallet's error enum type.
type PalletError struct {
	Type        scaleinfo.TypeID `json:"type"`
	Deprecation DeprecationInfo  `json:"deprecationInfo"`
}

// Constant is one pallet constant with its encoded value.
type Constant struct {
	Name        string            `json:"name"`
	Type        scaleinfo.TypeID  `json:"type"`
	Value       []byte            `json:"value"`
	Docs        []string          `json:"docs"`
	Deprecation DeprecationStatus `json:"deprecationInfo"`
}

// AssociatedType is one associated type of the pallet's config trait.
type AssociatedType struct {
	Name string           `json:"name"`
	Type scaleinfo.TypeID `json:"type"`
	Docs []string         `json:"docs"`
}

// ViewFunction is one read-only pallet query function.
type ViewFunction struct {
	Name string `json:"name"`
	// ID is the stable 32-byte function id.
	ID          [32]byte          `json:"id"`
	Inputs      []FunctionParam   `json:"inputs"`
	Output      scaleinfo.TypeID  `json:"output"`
	Docs        []string          `json:"docs"`
	Deprecation DeprecationStatus `json:"deprecationInfo"`
}

// RuntimeAPI is one runtime API trait.
type RuntimeAPI struct {
	Name        string             `json:"name"`
	Methods     []RuntimeAPIMethod `json:"methods"`
	Docs        []string           `json:"docs"`
	Deprecation DeprecationStatus  `json:"deprecationInfo"`
	Version     uint32             `json:"version"`
}

// RuntimeAPIMethod is one method of a runtime API trait.
type RuntimeAPIMethod struct {
	Name        string            `json:"name"`
	Inputs      []FunctionParam   `json:"inputs"`
	Output      scaleinfo.TypeID  `json:"output"`
	Docs        []string          `json:"docs"`
	Deprecation DeprecationStatus `json:"deprecationInfo"`
}

// FunctionParam is one named parameter of a method or view function.
type FunctionParam struct {
	Name string           `json:"name"`
	Type scaleinfo.TypeID `json:"type"`
}

// Extrinsic describes the extrinsic format understood by the runtime.
type Extrinsic struct {
	// Versions lists the extrinsic format versions the runtime supports.
	Versions      []uint8          `json:"versions"`
	AddressType   scaleinfo.TypeID `json:"addressType"`
	SignatureType scaleinfo.TypeID `json:"signatureType"`
	// ExtensionsByVersion maps a supported transaction version to the
	// indexes (into Extensions) of the extensions it uses, in order.
	ExtensionsByVersion map[uint8][]uint32 `json:"transactionExtensionsByVersion"`
	// Extensions in the order they appear in the extrinsic.
	Extensions []TransactionExtension `json:"transactionExtensions"`
}

// TransactionExtension is one extension attached to the extrinsic
// beyond its core call.
type TransactionExtension struct {
	Identifier string           `json:"identifier"`
	Type       scaleinfo.TypeID `json:"type"`
	// Implicit is the type of the data folded into the signed payload.
	Implicit scaleinfo.TypeID `json:"implicit"`
}

// OuterEnums references the runtime-wide enum types.
type OuterEnums struct {
	CallType  scaleinfo.TypeID `json:"callType"`
	EventType scaleinfo.TypeID `json:"eventType"`
	ErrorType scaleinfo.TypeID `json:"errorType"`
}

// CustomMetadata carries chain-specific values keyed by name.
type CustomMetadata struct {
	Map map[string]CustomValue `json:"map"`
}

// CustomValue is one custom value with its type and encoded bytes.
type CustomValue struct {
	Type  scaleinfo.TypeID `json:"type"`
	Value []byte           `json:"value"`
}

// DeprecationStatus records whether an item is deprecated.
type DeprecationStatus struct {
	Deprecated bool `json:"deprecated"`
	// Note explains the deprecation; empty for a bare deprecation.
	Note string `json:"note,omitempty"`
	// Since optionally names the version the deprecation occurred in.
	Since string `json:"since,omitempty"`
}

// DeprecationInfo records full or per-variant deprecation of an enum.
// At most one field is set; the zero value means not deprecated.
type DeprecationInfo struct {
	ItemDeprecated     *DeprecationStatus          `json:"itemDeprecated,omitempty"`
	VariantsDeprecated map[uint8]DeprecationStatus `json:"variantsDeprecated,omitempty"`
}
