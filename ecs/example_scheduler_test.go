package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/gears/ecs"
)

type Drift struct {
	X, Y float32
}

type Heading struct {
	DX, DY float32
}

type DriftSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Drift
		*Heading
	}]
}

func (s *DriftSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.Time.Split().Seconds())
	for entity := range s.Entities.Values() {
		entity.Drift.X += entity.Heading.DX * dt
		entity.Drift.Y += entity.Heading.DY * dt
	}
}

// ExampleScheduler demonstrates driving systems with a shared time resource.
// The Scheduler initializes Query fields on registration, executes every
// query before the systems run and flushes buffered commands afterwards.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Drift](registry)
	ecs.RegisterComponent[Heading](registry)
	world := ecs.NewWorld(registry)

	world.Insert(Drift{X: 0, Y: 0}, Heading{DX: 10, DY: 5})
	world.Insert(Drift{X: 100, Y: 100}, Heading{DX: -5, DY: -5})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&DriftSystem{})

	// every clock read advances a quarter second
	clock := ecs.NewManualClock(time.Unix(0, 0), 250*time.Millisecond)
	tm := ecs.NewTime(clock)

	for i := 0; i < 4; i++ {
		tm.Delta()
		scheduler.Once(tm)
	}

	view := ecs.NewView[struct {
		*Drift
	}](world)
	for id, item := range view.Iter() {
		fmt.Printf("entity %d at (%.1f, %.1f)\n", id, item.Drift.X, item.Drift.Y)
	}

	// Output:
	// entity 1 at (10.0, 5.0)
	// entity 2 at (95.0, 95.0)
}
