package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with embedded pointer fields for each component type.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag.
// A field of type EntityId is filled with the id of the entity being viewed.
type View[T any] struct {
	world       *World
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required.
func NewView[T any](world *World) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		world:       world,
		types:       make([]reflect.Type, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			if v.hasId {
				panic("View struct may hold only one EntityId field")
			}
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		v.types = append(v.types, fieldType.Elem())
		v.fieldOffset = append(v.fieldOffset, field.Offset)

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		v.optional = append(v.optional, isOptional)
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is missing any required components.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	loc, ok := v.world.location(id)
	if !ok || !v.matchesArchetype(loc.archetype) {
		return false
	}

	storageIndices := v.buildStorageIndices(loc.archetype)
	return v.populateResult(unsafe.Pointer(ptr), id, loc, storageIndices)
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks if an archetype contains all the required component types for this view
// Optional components are not checked - they may or may not be present
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, requiredType := range v.types {
		if v.optional[i] {
			continue
		}
		if !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}

func (v *View[T]) buildStorageIndices(archetype *Archetype) []int {
	storageIndices := make([]int, len(v.types))
	for i, componentType := range v.types {
		storageIndices[i] = archetype.typeIndex(componentType)
	}
	return storageIndices
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, id EntityId, loc entityLocation, storageIndices []int) bool {
	if v.hasId {
		*(*EntityId)(unsafe.Pointer(uintptr(resultPtr) + v.idOffset)) = id
	}

	for i, storageIdx := range storageIndices {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		var component any
		if storageIdx != -1 {
			component = loc.archetype.storages[storageIdx].Get(loc.row)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Extract the component pointer from the interface{} data word
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
	return true
}

// Iter returns an iterator over all entities that have all the required
// components for this view, in insertion order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		indices := make(map[*Archetype][]int)

		var result T
		resultPtr := unsafe.Pointer(&result)

		for idx, loc := range v.world.locations {
			storageIndices, seen := indices[loc.archetype]
			if !seen {
				if v.matchesArchetype(loc.archetype) {
					storageIndices = v.buildStorageIndices(loc.archetype)
				}
				indices[loc.archetype] = storageIndices
			}
			if storageIndices == nil {
				continue
			}

			id := EntityId(idx + 1)
			if !v.populateResult(resultPtr, id, loc, storageIndices) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
// This is useful when you only care about the component data, not which entity it belongs to
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Insert creates a new entity from the non-nil component fields of data.
func (v *View[T]) Insert(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i, componentType := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Insert")
			}
			continue
		}
		components = append(components, reflect.NewAt(componentType, componentPtr).Elem().Interface())
	}

	return v.world.Insert(components...)
}
