package ecs

import (
	"iter"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Query wraps a View with caching for repeated iteration. Queries remember
// which archetypes match and pre-build the entity/component arrays once
// per frame in Execute.
type Query[T any] struct {
	view    *View[T]
	world   *World
	indices *intmap.Map[uint32, []int]

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query bound to world.
func NewQuery[T any](world *World) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init initializes or re-initializes the Query with a world.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(world *World) {
	q.view = NewView[T](world)
	q.world = world
	q.indices = intmap.New[uint32, []int](8)
	q.cacheValid = false
}

// storageIndices returns the view's storage mapping for archetype, or nil
// when the archetype does not match. Archetype type sets never change, so
// cached entries stay valid for the life of the query.
func (q *Query[T]) storageIndices(archetype *Archetype) []int {
	if indices, ok := q.indices.Get(archetype.id); ok {
		return indices
	}

	var indices []int
	if q.view.matchesArchetype(archetype) {
		indices = q.view.buildStorageIndices(archetype)
	}
	q.indices.Put(archetype.id, indices)
	return indices
}

// Execute builds the entity and component caches for this frame.
// Called automatically by the Scheduler before systems run.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	var result T
	resultPtr := unsafe.Pointer(&result)

	for idx, loc := range q.world.locations {
		indices := q.storageIndices(loc.archetype)
		if indices == nil {
			continue
		}

		id := EntityId(idx + 1)
		if !q.view.populateResult(resultPtr, id, loc, indices) {
			continue
		}
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, result)
	}

	q.cacheValid = true
}

// Len returns the number of entities captured by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
