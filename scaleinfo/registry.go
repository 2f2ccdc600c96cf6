package scaleinfo

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Registry is the flat id → type table. It is read-only once populated;
// conversion never registers anything.
type Registry struct {
	types map[TypeID]*Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[TypeID]*Type)}
}

// Register stores ty under id, replacing any previous entry.
func (r *Registry) Register(id TypeID, ty Type) {
	if r.types == nil {
		r.types = make(map[TypeID]*Type)
	}
	r.types[id] = &ty
}

// Resolve returns the type stored under id, or false if the id is unknown.
func (r *Registry) Resolve(id TypeID) (*Type, bool) {
	if r == nil {
		return nil, false
	}
	ty, ok := r.types[id]
	return ty, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.types)
}

// portableEntry is the wire shape of one registry slot.
type portableEntry struct {
	ID   TypeID `json:"id"`
	Type Type   `json:"type"`
}

// MarshalJSON emits the table as an array of {id, type} entries in
// ascending id order, so identical registries serialize to identical
// bytes.
func (r *Registry) MarshalJSON() ([]byte, error) {
	ids := make([]TypeID, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries := make([]portableEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, portableEntry{ID: id, Type: *r.types[id]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON rebuilds the table from its array form. Duplicate ids
// are rejected rather than silently overwritten.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var entries []portableEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	types := make(map[TypeID]*Type, len(entries))
	for i := range entries {
		e := entries[i]
		if _, exists := types[e.ID]; exists {
			return fmt.Errorf("duplicate type id %d", e.ID)
		}
		ty := e.Type
		types[e.ID] = &ty
	}
	r.types = types
	return nil
}
