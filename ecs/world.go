package ecs

import (
	"reflect"
	"slices"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// World owns every entity and its components. Components live in
// archetype tables keyed by their sorted type set; entity ids index a
// location arena that points into those tables.
type World struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	order      []*Archetype
	locations  []entityLocation
}

// NewWorld creates an empty world with the given component registry.
func NewWorld(registry *ComponentRegistry) *World {
	return &World{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
	}
}

// Registry returns the registry component types must be registered with.
func (w *World) Registry() *ComponentRegistry {
	return w.registry
}

// Insert creates a new entity owning the given components and returns its id.
func (w *World) Insert(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot insert entity without components")
	}

	types := extractComponentTypes(components)
	archetype := w.archetypeFor(types)

	id := EntityId(len(w.locations) + 1)
	row := archetype.insert(id, components)
	w.locations = append(w.locations, entityLocation{archetype: archetype, row: row})
	return id
}

// AddComponent attaches component to an existing entity, moving it to the
// matching archetype. If the entity already owns a component of that type
// its value is replaced. The entity id does not change.
func (w *World) AddComponent(id EntityId, component any) bool {
	loc, ok := w.location(id)
	if !ok {
		return false
	}

	compType := extractComponentTypes([]any{component})[0]
	oldArchetype := loc.archetype
	if idx := oldArchetype.typeIndex(compType); idx != -1 {
		return oldArchetype.storages[idx].Set(loc.row, component)
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)+1)
	newTypes = append(newTypes, oldArchetype.types...)
	newTypes = append(newTypes, compType)
	sort.Sort(byTypeName(newTypes))
	newArchetype := w.archetypeFor(newTypes)

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		if typ == compType {
			components = append(components, component)
		} else {
			components = append(components, oldArchetype.GetComponent(loc.row, typ))
		}
	}

	// components holds pointers into the old rows, copy before vacating
	row := newArchetype.insert(id, components)
	oldArchetype.vacate(loc.row)
	w.locations[id.index()] = entityLocation{archetype: newArchetype, row: row}
	return true
}

// GetComponent returns a pointer to the component for the given entity ID
// and component type, or nil.
func (w *World) GetComponent(id EntityId, compType reflect.Type) any {
	loc, ok := w.location(id)
	if !ok {
		return nil
	}
	return loc.archetype.GetComponent(loc.row, compType)
}

// HasComponent checks if an entity has a specific component type
func (w *World) HasComponent(id EntityId, compType reflect.Type) bool {
	loc, ok := w.location(id)
	if !ok {
		return false
	}
	return loc.archetype.HasComponent(compType)
}

// Contains reports whether id names an inserted entity.
func (w *World) Contains(id EntityId) bool {
	_, ok := w.location(id)
	return ok
}

// Len returns the number of entities in the world.
func (w *World) Len() int {
	return len(w.locations)
}

// Archetypes returns all archetypes in creation order.
func (w *World) Archetypes() []*Archetype {
	return slices.Clone(w.order)
}

// GetArchetype returns the archetype for exactly the given component types, if one exists.
func (w *World) GetArchetype(types ...reflect.Type) *Archetype {
	sorted := slices.Clone(types)
	sort.Sort(byTypeName(sorted))
	archetype, _ := w.archetypes.Get(hashTypesToUint32(sorted))
	return archetype
}

func (w *World) location(id EntityId) (entityLocation, bool) {
	idx := id.index()
	if idx < 0 || idx >= len(w.locations) {
		return entityLocation{}, false
	}
	return w.locations[idx], true
}

// archetypeFor returns the archetype for a sorted type set, creating it on first use.
func (w *World) archetypeFor(types []reflect.Type) *Archetype {
	archetypeId := hashTypesToUint32(types)

	archetype, exists := w.archetypes.Get(archetypeId)
	if exists {
		if !slices.Equal(archetype.types, types) {
			panic("archetype id collision between component sets")
		}
		return archetype
	}

	archetype = NewArchetype(archetypeId, types, w.registry)
	w.archetypes.Put(archetypeId, archetype)
	w.order = append(w.order, archetype)
	return archetype
}

func componentType(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType != nil && compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)
		if compType == nil {
			panic("components cannot be nil")
		}

		// Components can be structs or primitives (int, string, etc.)
		// But not pointers, maps, channels, or functions (those aren't value types)
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}

		if slices.Contains(types, compType) {
			panic("duplicate component type " + compType.String())
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// Use the type's pointer as a unique identifier
		ptr := (*iface)(unsafe.Pointer(&t)).data
		val := uint32(uintptr(ptr))

		// Mix in all 4 bytes if on 64-bit system
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	component, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return component
}
