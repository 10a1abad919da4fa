package ecs

import (
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that owns exactly one combination of
// component types, one storage per type, rows aligned across storages.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
	entities []EntityId
	count    int
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// insert stores the components for entity and returns the row they occupy.
// components must hold exactly one value per archetype type.
func (a *Archetype) insert(entity EntityId, components []any) int {
	row := -1
	for _, comp := range components {
		idx := a.typeIndex(componentType(comp))
		if idx == -1 {
			panic("component type " + componentType(comp).String() + " does not belong to archetype")
		}
		row = a.storages[idx].Append(comp)
		if row == -1 {
			panic("component of type " + componentType(comp).String() + " rejected by storage")
		}
	}

	for row >= len(a.entities) {
		a.entities = append(a.entities, NoEntity)
	}
	a.entities[row] = entity
	a.count++
	return row
}

// vacate clears a row after its entity has moved to another archetype.
func (a *Archetype) vacate(row int) {
	if row < 0 || row >= len(a.entities) || a.entities[row] == NoEntity {
		return
	}
	for _, storage := range a.storages {
		storage.Delete(row)
	}
	a.entities[row] = NoEntity
	a.count--
}

func (a *Archetype) typeIndex(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the component of the given type stored
// in row, or nil.
func (a *Archetype) GetComponent(row int, compType reflect.Type) any {
	idx := a.typeIndex(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(row)
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

// Len returns the number of entities stored in this archetype.
func (a *Archetype) Len() int {
	return a.count
}

// Iter returns an iterator over the entities in this archetype in row order.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		for _, id := range a.entities {
			if id == NoEntity {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}
