package ecs

// EntityId is a stable, opaque identifier for one entity. Ids are handed
// out by World.Insert in increasing order starting at 1 and are never
// reused; the zero value names no entity.
type EntityId uint32

// NoEntity is the zero EntityId.
const NoEntity EntityId = 0

// index returns the entity's slot in the World's location arena.
func (e EntityId) index() int {
	return int(e) - 1
}

// entityLocation records which archetype row holds an entity's components.
type entityLocation struct {
	archetype *Archetype
	row       int
}
