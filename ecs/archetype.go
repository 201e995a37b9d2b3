package ecs

import (
	"iter"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity sharing one exact set of component types.
// All columns are kept slot-aligned: slot i of each column belongs to the
// same entity.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []componentStorage
	// generations counts deletes per slot; it is stamped into issued ids.
	generations []uint8
	retired     int
}

// NewArchetype creates an archetype for the given sorted component types.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]componentStorage, len(types)),
	}
	for idx, typ := range types {
		a.storages[idx] = registry.newStorage(typ)
	}
	return a
}

// Spawn appends one entity built from components and returns its id.
func (a *Archetype) Spawn(components []any) EntityId {
	slot := -1
	for _, comp := range components {
		idx := a.column(componentType(comp))
		if idx < 0 {
			panic("component " + componentType(comp).String() + " does not belong to archetype")
		}
		pos := a.storages[idx].Append(comp)
		if slot >= 0 && pos != slot {
			panic("archetype columns out of alignment")
		}
		slot = pos
	}
	for len(a.generations) <= slot {
		a.generations = append(a.generations, 0)
	}
	return NewEntityId(a.id, uint32(slot)).withGeneration(a.generations[slot])
}

// GetComponent returns a pointer to the component of compType in slot, or nil.
func (a *Archetype) GetComponent(slot uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx < 0 {
		return nil
	}
	return a.storages[idx].Get(int(slot))
}

// Delete clears the entity's slot in every column and bumps the slot's
// generation. A slot already at maxGeneration is retired and never reused.
// Slot indices of other entities are stable.
func (a *Archetype) Delete(id EntityId) bool {
	if !a.Contains(id) {
		return false
	}
	slot := int(id.Index())
	if a.generations[slot] == maxGeneration {
		for _, storage := range a.storages {
			storage.Retire(slot)
		}
		a.retired++
		return true
	}
	for _, storage := range a.storages {
		storage.Delete(slot)
	}
	a.generations[slot]++
	return true
}

// Retired returns the number of slots withdrawn after exhausting their generations.
func (a *Archetype) Retired() int {
	return a.retired
}

// Contains reports whether id names a live entity of this archetype.
func (a *Archetype) Contains(id EntityId) bool {
	if id.ArchetypeId() != a.id || !a.Alive(id.Index()) {
		return false
	}
	return a.generations[id.Index()] == id.Generation()
}

// Alive reports whether slot holds an entity.
func (a *Archetype) Alive(slot uint32) bool {
	if len(a.storages) == 0 {
		return false
	}
	return a.storages[0].Has(int(slot))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in the archetype.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter returns an iterator over all live EntityIds in this archetype
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}
		for slot := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(slot)).withGeneration(a.generations[slot])) {
				return
			}
		}
	}
}

func (a *Archetype) column(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}
