// Package convert downgrades newer metadata documents to the next older
// version for clients that cannot decode the newer format.
//
// The conversion is lossy by design: the older format has no type
// registry, so every type reference is flattened to its display name at
// conversion time. It is also all-or-nothing: the first failure anywhere
// aborts the whole call and no partial document is produced, because
// partially wrong metadata is worse than an explicit failure for a
// client relying on it to decode chain data.
package convert

import (
	"fmt"
	"strings"

	"polkameta.dev/framemeta/metadata"
	"polkameta.dev/framemeta/scaleinfo"
	"polkameta.dev/framemeta/v13"
	"polkameta.dev/framemeta/v14"
)

// Backwards converts a prefixed document to the previous metadata
// version. Only V14 → V13 is implemented; anything else fails with an
// UnsupportedVersion error.
func Backwards(p metadata.Prefixed) (metadata.Prefixed, error) {
	if p.Metadata.V14 == nil {
		return metadata.Prefixed{}, newError(KindUnsupportedVersion, fmt.Sprintf(
			"unsupported metadata version V%d, currently only V14 to V13 conversion supported",
			p.Metadata.Version()))
	}
	converted, err := V14ToV13(p.Metadata.V14)
	if err != nil {
		return metadata.Prefixed{}, err
	}
	return metadata.Prefixed{
		Magic:    p.Magic,
		Metadata: metadata.RuntimeMetadata{V13: converted},
	}, nil
}

// V14ToV13 converts a V14 document to V13. The source document and its
// registry are never mutated.
func V14ToV13(m *v14.Metadata) (*v13.Metadata, error) {
	c := &converter{meta: m}
	return c.convert()
}

type converter struct {
	meta *v14.Metadata
}

func (c *converter) convert() (*v13.Metadata, error) {
	modules := make([]v13.Module, 0, len(c.meta.Pallets))
	for i := range c.meta.Pallets {
		module, err := c.convertPallet(&c.meta.Pallets[i])
		if err != nil {
			return nil, err
		}
		modules = append(modules, *module)
	}
	return &v13.Metadata{
		Modules:   modules,
		Extrinsic: c.convertExtrinsic(),
	}, nil
}

// convertExtrinsic keeps the version and the extension identifiers; the
// per-extension type information has no slot in the older format.
func (c *converter) convertExtrinsic() v13.Extrinsic {
	extensions := make([]string, 0, len(c.meta.Extrinsic.SignedExtensions))
	for _, se := range c.meta.Extrinsic.SignedExtensions {
		extensions = append(extensions, se.Identifier)
	}
	return v13.Extrinsic{
		Version:          c.meta.Extrinsic.Version,
		SignedExtensions: extensions,
	}
}

func (c *converter) convertPallet(pallet *v14.Pallet) (*v13.Module, error) {
	module := &v13.Module{
		Name:  pallet.Name,
		Index: pallet.Index,
	}
	if pallet.Storage != nil {
		storage, err := c.convertStorage(pallet.Storage)
		if err != nil {
			return nil, err
		}
		module.Storage = storage
	}
	if pallet.Calls != nil {
		calls, err := c.convertCall(pallet.Calls)
		if err != nil {
			return nil, err
		}
		module.Calls = calls
	}
	if pallet.Event != nil {
		event, err := c.convertEvent(pallet.Event)
		if err != nil {
			return nil, err
		}
		module.Event = event
	}
	module.Constants = make([]v13.Constant, 0, len(pallet.Constants))
	for _, constant := range pallet.Constants {
		converted, err := c.convertConstant(constant)
		if err != nil {
			return nil, err
		}
		module.Constants = append(module.Constants, converted)
	}
	module.Errors = []v13.ErrorMetadata{}
	if pallet.Error != nil {
		errs, err := c.convertError(pallet.Error)
		if err != nil {
			return nil, err
		}
		module.Errors = errs
	}
	return module, nil
}

func (c *converter) convertStorage(storage *v14.PalletStorage) (*v13.Storage, error) {
	entries := make([]v13.StorageEntry, 0, len(storage.Entries))
	for _, entry := range storage.Entries {
		ty, err := c.convertStorageEntryType(entry.Type)
		if err != nil {
			return nil, err
		}
		modifier, err := convertModifier(entry.Modifier)
		if err != nil {
			return nil, err
		}
		entries = append(entries, v13.StorageEntry{
			Name:          entry.Name,
			Modifier:      modifier,
			Type:          ty,
			Default:       entry.Default,
			Documentation: entry.Docs,
		})
	}
	return &v13.Storage{Prefix: storage.Prefix, Entries: entries}, nil
}

// convertStorageEntryType re-derives the older format's structural map
// arity (Map/DoubleMap/NMap) from the newer format's uniform
// hasher-count encoding.
func (c *converter) convertStorageEntryType(ty v14.StorageEntryType) (v13.StorageEntryType, error) {
	switch {
	case ty.Plain != nil:
		value, err := c.typeIdent(ty.Plain.Value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{Plain: &v13.StoragePlain{Value: value}}, nil

	case ty.Map != nil:
		return c.convertStorageMap(ty.Map.Hashers, ty.Map.Key, ty.Map.Value)

	case ty.DoubleMap != nil:
		key1, err := c.typeIdent(ty.DoubleMap.Key1)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		key2, err := c.typeIdent(ty.DoubleMap.Key2)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		value, err := c.typeIdent(ty.DoubleMap.Value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		hasher, err := convertHasher(ty.DoubleMap.Hasher)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		key2Hasher, err := convertHasher(ty.DoubleMap.Key2Hasher)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{DoubleMap: &v13.StorageDoubleMap{
			Hasher:     hasher,
			Key1:       key1,
			Key2:       key2,
			Value:      value,
			Key2Hasher: key2Hasher,
		}}, nil

	case ty.NMap != nil:
		keys, err := c.keyIdents(ty.NMap.Keys)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		value, err := c.typeIdent(ty.NMap.Value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		hashers, err := convertHashers(ty.NMap.Hashers)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{NMap: &v13.StorageNMap{
			Keys:    keys,
			Hashers: hashers,
			Value:   value,
		}}, nil

	default:
		return v13.StorageEntryType{}, newError(KindInvariant, "storage entry type has an empty definition")
	}
}

func (c *converter) convertStorageMap(hashers []v14.StorageHasher, key, value scaleinfo.TypeID) (v13.StorageEntryType, error) {
	keyIdents, err := c.keyIdents(key)
	if err != nil {
		return v13.StorageEntryType{}, err
	}
	switch len(hashers) {
	case 0:
		return v13.StorageEntryType{}, newError(KindInvariant, "storage map with zero hashers")
	case 1:
		// The whole key is rendered once, even when it is a tuple.
		keyIdent, err := c.typeIdent(key)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		valueIdent, err := c.typeIdent(value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		hasher, err := convertHasher(hashers[0])
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{Map: &v13.StorageMap{
			Hasher: hasher,
			Key:    keyIdent,
			Value:  valueIdent,
			Unused: false,
		}}, nil
	case 2:
		if len(keyIdents) != 2 {
			return v13.StorageEntryType{}, newError(KindKeyArityMismatch, fmt.Sprintf(
				"expected two keys for a DoubleMap, found %d (%v)", len(keyIdents), keyIdents))
		}
		valueIdent, err := c.typeIdent(value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		hasher, err := convertHasher(hashers[0])
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		key2Hasher, err := convertHasher(hashers[1])
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{DoubleMap: &v13.StorageDoubleMap{
			Hasher:     hasher,
			Key1:       keyIdents[0],
			Key2:       keyIdents[1],
			Value:      valueIdent,
			Key2Hasher: key2Hasher,
		}}, nil
	default:
		valueIdent, err := c.typeIdent(value)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		converted, err := convertHashers(hashers)
		if err != nil {
			return v13.StorageEntryType{}, err
		}
		return v13.StorageEntryType{NMap: &v13.StorageNMap{
			Keys:    keyIdents,
			Hashers: converted,
			Value:   valueIdent,
		}}, nil
	}
}

// keyIdents renders a map key type as an ordered name list: one name
// per element when the key resolves to a tuple, a single name otherwise.
func (c *converter) keyIdents(key scaleinfo.TypeID) ([]string, error) {
	keyType, err := c.resolveType(key)
	if err != nil {
		return nil, err
	}
	if keyType.Def.Tuple == nil {
		ident, err := c.typeIdent(key)
		if err != nil {
			return nil, err
		}
		return []string{ident}, nil
	}
	idents := make([]string, 0, len(keyType.Def.Tuple.Elems))
	for _, elem := range keyType.Def.Tuple.Elems {
		ident, err := c.typeIdent(elem)
		if err != nil {
			return nil, err
		}
		idents = append(idents, ident)
	}
	return idents, nil
}

// convertCall projects the pallet's call enum into the older explicit
// function list. Call arguments must be named fields.
func (c *converter) convertCall(call *v14.PalletCall) ([]v13.Function, error) {
	variants, err := c.enumVariants(call.Type, "call")
	if err != nil {
		return nil, err
	}
	functions := make([]v13.Function, 0, len(variants))
	for _, variant := range variants {
		arguments := make([]v13.FunctionArgument, 0, len(variant.Fields))
		for _, field := range variant.Fields {
			if field.Name == "" {
				return nil, newError(KindUnnamedField, fmt.Sprintf(
					"call %s has an unnamed field, expected named variant fields", variant.Name))
			}
			tyName, err := c.fieldTypeName(field)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, v13.FunctionArgument{Name: field.Name, Type: tyName})
		}
		functions = append(functions, v13.Function{
			Name:          variant.Name,
			Arguments:     arguments,
			Documentation: convertDocs(variant.Docs),
		})
	}
	return functions, nil
}

// convertEvent projects the pallet's event enum into the older explicit
// event list. Argument names are dropped; only type names survive, with
// the T:: associated-type prefix stripped to match the older rendering
// convention.
func (c *converter) convertEvent(event *v14.PalletEvent) ([]v13.Event, error) {
	variants, err := c.enumVariants(event.Type, "event")
	if err != nil {
		return nil, err
	}
	events := make([]v13.Event, 0, len(variants))
	for _, variant := range variants {
		arguments := make([]string, 0, len(variant.Fields))
		for _, field := range variant.Fields {
			tyName, err := c.fieldTypeName(field)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, stripTypePrefix(tyName))
		}
		events = append(events, v13.Event{
			Name:          variant.Name,
			Arguments:     arguments,
			Documentation: convertDocs(variant.Docs),
		})
	}
	return events, nil
}

func (c *converter) convertConstant(constant v14.Constant) (v13.Constant, error) {
	tyName, err := c.typeIdent(constant.Type)
	if err != nil {
		return v13.Constant{}, err
	}
	return v13.Constant{
		Name:          constant.Name,
		Type:          tyName,
		Value:         constant.Value,
		Documentation: constant.Docs,
	}, nil
}

// convertError projects the pallet's error enum into the older explicit
// error list. Errors carry no argument types in the older format; any
// fields a variant declares are dropped.
func (c *converter) convertError(errEnum *v14.PalletError) ([]v13.ErrorMetadata, error) {
	variants, err := c.enumVariants(errEnum.Type, "error")
	if err != nil {
		return nil, err
	}
	errs := make([]v13.ErrorMetadata, 0, len(variants))
	for _, variant := range variants {
		errs = append(errs, v13.ErrorMetadata{
			Name:          variant.Name,
			Documentation: convertDocs(variant.Docs),
		})
	}
	return errs, nil
}

// enumVariants resolves id and requires a variant type, returning its
// variants in declaration order. what names the expectation in errors.
func (c *converter) enumVariants(id scaleinfo.TypeID, what string) ([]scaleinfo.Variant, error) {
	ty, err := c.resolveType(id)
	if err != nil {
		return nil, err
	}
	if ty.Def.Variant == nil {
		return nil, newError(KindNotAVariant, fmt.Sprintf(
			"%s type %d should be an enum/variant type", what, id))
	}
	return ty.Def.Variant.Variants, nil
}

// convertModifier and convertHasher reject values outside the known
// sets rather than substituting a default: the source arrives from
// arbitrary JSON, and a misread modifier or hasher would make clients
// derive wrong storage keys.
func convertModifier(m v14.StorageEntryModifier) (v13.StorageEntryModifier, error) {
	switch m {
	case v14.ModifierOptional:
		return v13.ModifierOptional, nil
	case v14.ModifierDefault:
		return v13.ModifierDefault, nil
	default:
		return "", newError(KindInvariant, fmt.Sprintf("unknown storage entry modifier %q", m))
	}
}

func convertHasher(h v14.StorageHasher) (v13.StorageHasher, error) {
	switch h {
	case v14.Blake2_128:
		return v13.Blake2_128, nil
	case v14.Blake2_256:
		return v13.Blake2_256, nil
	case v14.Blake2_128Concat:
		return v13.Blake2_128Concat, nil
	case v14.Twox128:
		return v13.Twox128, nil
	case v14.Twox256:
		return v13.Twox256, nil
	case v14.Twox64Concat:
		return v13.Twox64Concat, nil
	case v14.Identity:
		return v13.Identity, nil
	default:
		return "", newError(KindInvariant, fmt.Sprintf("unknown storage hasher %q", h))
	}
}

func convertHashers(hashers []v14.StorageHasher) ([]v13.StorageHasher, error) {
	out := make([]v13.StorageHasher, 0, len(hashers))
	for _, h := range hashers {
		converted, err := convertHasher(h)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// convertDocs applies the older format's convention of one leading
// space per non-empty documentation line.
func convertDocs(docs []string) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc != "" {
			doc = " " + doc
		}
		out = append(out, doc)
	}
	return out
}

// stripTypePrefix removes the T:: associated-type qualifier from a
// rendered name. Cosmetic only; kept for parity with the older
// hand-written metadata rendering.
func stripTypePrefix(name string) string {
	return strings.ReplaceAll(name, "T::", "")
}
