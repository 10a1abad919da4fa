package sim

import (
	"github.com/plus3/gears/component"
	"github.com/plus3/gears/ecs"
)

// UpdatePositions advances t by v over dt seconds, one axis at a time.
func UpdatePositions(t *component.Transform, v component.Velocity, dt float32) {
	t.Position.X += v.DX * dt
	t.Position.Y += v.DY * dt
	t.Position.Z += v.DZ * dt
}

// MovementSystem integrates every entity that owns a Transform and a Velocity.
type MovementSystem struct {
	Entities ecs.Query[struct {
		*component.Transform
		*component.Velocity
	}]
}

// Execute reads the elapsed time once, when the system runs, and applies it
// to every matching entity in insertion order.
func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.Time.Split().Seconds())
	for entity := range s.Entities.Values() {
		UpdatePositions(entity.Transform, *entity.Velocity, dt)
	}
}
