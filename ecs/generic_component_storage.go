package ecs

import (
	"reflect"
)

// ComponentRegistry manages component type registration for a World.
// Each World has its own registry, allowing multiple independent worlds
// to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before it can be inserted.
// Registering the same type twice is harmless.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether t has a storage factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T in fixed-size
// blocks. Blocks are allocated individually so pointers handed out by Get
// stay valid while the storage grows.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	filled    []*[genericBlockSize]bool
	freeSlots []int
	nextIndex int
}

func asComponent[T any](item any) (T, bool) {
	if ptr, ok := item.(*T); ok && ptr != nil {
		return *ptr, true
	}
	val, ok := item.(T)
	return val, ok
}

// Append adds a component to storage and returns its index, or -1 if the
// item is not a T or *T.
func (cs *genericComponentStorage[T]) Append(item any) int {
	concreteItem, ok := asComponent[T](item)
	if !ok {
		return -1
	}

	if len(cs.freeSlots) > 0 {
		index := cs.freeSlots[len(cs.freeSlots)-1]
		cs.freeSlots = cs.freeSlots[:len(cs.freeSlots)-1]

		blockIdx := index / genericBlockSize
		slotIdx := index % genericBlockSize

		cs.blocks[blockIdx][slotIdx] = concreteItem
		cs.filled[blockIdx][slotIdx] = true
		return index
	}

	index := cs.nextIndex
	cs.nextIndex++

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		cs.filled = append(cs.filled, new([genericBlockSize]bool))
	}

	cs.blocks[blockIdx][slotIdx] = concreteItem
	cs.filled[blockIdx][slotIdx] = true
	return index
}

// Set overwrites an occupied slot. It returns false for empty slots or
// items of the wrong type.
func (cs *genericComponentStorage[T]) Set(index int, item any) bool {
	if !cs.Has(index) {
		return false
	}
	concreteItem, ok := asComponent[T](item)
	if !ok {
		return false
	}
	cs.blocks[index/genericBlockSize][index%genericBlockSize] = concreteItem
	return true
}

// Get returns a pointer to the component at the given index.
func (cs *genericComponentStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/genericBlockSize][index%genericBlockSize]
}

// Delete marks a component slot as empty. Entities are never deleted; a
// slot is vacated only when its entity migrates to another archetype.
func (cs *genericComponentStorage[T]) Delete(index int) {
	if !cs.Has(index) {
		return
	}

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	cs.filled[blockIdx][slotIdx] = false
	var zero T
	cs.blocks[blockIdx][slotIdx] = zero
	cs.freeSlots = append(cs.freeSlots, index)
}

// Has checks if a component exists at the given index.
func (cs *genericComponentStorage[T]) Has(index int) bool {
	if index < 0 {
		return false
	}

	blockIdx := index / genericBlockSize
	if blockIdx >= len(cs.filled) {
		return false
	}

	return cs.filled[blockIdx][index%genericBlockSize]
}
