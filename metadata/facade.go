package metadata

import (
	"errors"
	"fmt"
	"strings"

	"polkameta.dev/framemeta/hashing"
)

// ErrNoPallet is returned by storage-key derivation when the named
// pallet or entry does not exist in the document.
var ErrNoPallet = errors.New("pallet not found")

// Pallets lists all pallet (module) names in declaration order.
func (m RuntimeMetadata) Pallets() []string {
	var names []string
	switch {
	case m.V12 != nil:
		for _, mod := range m.V12.Modules {
			names = append(names, mod.Name)
		}
	case m.V13 != nil:
		for _, mod := range m.V13.Modules {
			names = append(names, mod.Name)
		}
	case m.V14 != nil:
		for _, p := range m.V14.Pallets {
			names = append(names, p.Name)
		}
	case m.V16 != nil:
		for _, p := range m.V16.Pallets {
			names = append(names, p.Name)
		}
	}
	return names
}

// PalletIndex returns the position of a pallet by name, matched
// case-insensitively.
func (m RuntimeMetadata) PalletIndex(name string) (int, bool) {
	for i, pallet := range m.Pallets() {
		if strings.EqualFold(pallet, name) {
			return i, true
		}
	}
	return 0, false
}

// StorageKeyPrefix derives the storage key prefix of one entry,
// twox128(prefix) ++ twox128(entry), for v14 and v16 documents. The
// pallet name is matched case-insensitively; the entry name is exact.
func (m RuntimeMetadata) StorageKeyPrefix(pallet, entry string) ([]byte, error) {
	prefix, entries, err := m.storageOf(pallet)
	if err != nil {
		return nil, err
	}
	for _, name := range entries {
		if name == entry {
			return hashing.PrefixFor(prefix, entry), nil
		}
	}
	return nil, fmt.Errorf("%w: no storage entry %s.%s", ErrNoPallet, pallet, entry)
}

// storageOf returns the storage prefix and entry names of a pallet.
func (m RuntimeMetadata) storageOf(pallet string) (string, []string, error) {
	switch {
	case m.V14 != nil:
		for _, p := range m.V14.Pallets {
			if !strings.EqualFold(p.Name, pallet) {
				continue
			}
			if p.Storage == nil {
				return "", nil, fmt.Errorf("%w: pallet %s has no storage", ErrNoPallet, pallet)
			}
			names := make([]string, 0, len(p.Storage.Entries))
			for _, e := range p.Storage.Entries {
				names = append(names, e.Name)
			}
			return p.Storage.Prefix, names, nil
		}
	case m.V16 != nil:
		for _, p := range m.V16.Pallets {
			if !strings.EqualFold(p.Name, pallet) {
				continue
			}
			if p.Storage == nil {
				return "", nil, fmt.Errorf("%w: pallet %s has no storage", ErrNoPallet, pallet)
			}
			names := make([]string, 0, len(p.Storage.Entries))
			for _, e := range p.Storage.Entries {
				names = append(names, e.Name)
			}
			return p.Storage.Prefix, names, nil
		}
	default:
		return "", nil, fmt.Errorf("storage key derivation requires a v14 or v16 document, got v%d", m.Version())
	}
	return "", nil, fmt.Errorf("%w: %s", ErrNoPallet, pallet)
}
