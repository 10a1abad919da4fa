package ecs

// Commands buffers structural changes requested by systems and applies
// them after every system in the pass has run, so no system observes a
// partially updated World.
type Commands struct {
	inserts []insertCommand
	adds    []addComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type insertCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

// Defer queues a function to run after the other buffered commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Insert queues the creation of an entity with the given components.
func (c *Commands) Insert(components ...any) {
	c.inserts = append(c.inserts, insertCommand{components: components})
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.inserts) + len(c.adds) + len(c.defers)
}

// Flush applies additions, then inserts, then deferred functions to world
// and resets the buffer.
func (c *Commands) Flush(world *World) {
	for _, cmd := range c.adds {
		world.AddComponent(cmd.entity, cmd.component)
	}

	for _, cmd := range c.inserts {
		world.Insert(cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.inserts = c.inserts[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
