// Package sim drives the fixed-cadence simulation loop.
package sim

import (
	"fmt"
	"time"

	"github.com/plus3/gears/component"
	"github.com/plus3/gears/config"
	"github.com/plus3/gears/ecs"
	"github.com/plus3/gears/manager"
	"github.com/plus3/gears/scene"
)

// State is the loop's lifecycle state.
type State int

const (
	PreStart State = iota
	Running
)

func (s State) String() string {
	switch s {
	case PreStart:
		return "PreStart"
	case Running:
		return "Running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RunReport summarizes one call to Run.
type RunReport struct {
	Iterations int
	SlowFrames int
	Slept      time.Duration
	Elapsed    time.Duration
}

// Loop owns the World, the shared time resource and the schedule, and
// paces iterations to a fixed frame duration.
type Loop struct {
	logger    manager.Logger
	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     ecs.Clock
	time      *ecs.Time
	seeds     []scene.Seed

	state         State
	initialized   bool
	started       bool
	frameDuration time.Duration
	iterations    int
	count         int
	report        RunReport
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock, typically with an ecs.ManualClock.
func WithClock(clock ecs.Clock) Option {
	return func(l *Loop) {
		l.clock = clock
	}
}

// WithFrameDuration sets the target duration of one iteration.
func WithFrameDuration(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.frameDuration = d
		}
	}
}

// WithIterations sets how many iterations Run performs before returning.
func WithIterations(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.iterations = n
		}
	}
}

// WithSeeds replaces the entities inserted by Startup. An empty list keeps
// the default entity, so the world is never left empty.
func WithSeeds(seeds ...scene.Seed) Option {
	return func(l *Loop) {
		if len(seeds) == 0 {
			l.seeds = scene.Default()
			return
		}
		l.seeds = seeds
	}
}

// WithConfig applies the loop section of a configuration.
func WithConfig(cfg config.LoopConfig) Option {
	return func(l *Loop) {
		WithFrameDuration(cfg.FrameDuration)(l)
		WithIterations(cfg.Iterations)(l)
	}
}

// NewWorld returns a World with the spatial components registered.
func NewWorld() *ecs.World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[component.Transform](registry)
	ecs.RegisterComponent[component.Velocity](registry)
	return ecs.NewWorld(registry)
}

// NewLoop creates a loop logging to logger. A nil world gets a fresh one
// from NewWorld; a supplied world has the spatial components registered.
func NewLoop(logger manager.Logger, world *ecs.World, opts ...Option) *Loop {
	if world == nil {
		world = NewWorld()
	} else {
		ecs.RegisterComponent[component.Transform](world.Registry())
		ecs.RegisterComponent[component.Velocity](world.Registry())
	}

	l := &Loop{
		logger:        logger,
		world:         world,
		scheduler:     ecs.NewScheduler(world),
		clock:         ecs.SystemClock{},
		seeds:         scene.Default(),
		state:         PreStart,
		frameDuration: config.DefaultFrameDuration,
		iterations:    10,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Type() string {
	return "game_manager"
}

// Startup seeds the world, schedules the movement system and creates the
// time resource. Seeding and scheduling happen once per Loop; starting
// again after Shutdown only marks the loop active.
func (l *Loop) Startup() {
	if l.started {
		return
	}

	if !l.initialized {
		for _, seed := range l.seeds {
			l.world.Insert(seed.Transform, seed.Velocity)
		}
		l.scheduler.Register(&MovementSystem{})
		l.time = ecs.NewTime(l.clock)
		l.initialized = true
	}

	l.logger.Info("Loop.Startup(): Game started")
	l.logger.Debug(fmt.Sprintf("Loop.Startup(): %d entities, frame %s, %d iterations",
		l.world.Len(), l.frameDuration, l.iterations))
	l.started = true
}

// Run blocks until the configured number of iterations has completed.
func (l *Loop) Run() RunReport {
	if !l.started {
		l.logger.Warn("Loop.Run(): called before Startup")
		l.Startup()
	}

	l.state = Running
	l.count = 0
	l.report = RunReport{}
	start := l.clock.Now()

	for l.Step() {
	}

	l.report.Elapsed = l.clock.Now().Sub(start)
	l.logger.Info(fmt.Sprintf("Loop.Run(): %d iterations in %s", l.report.Iterations, l.report.Elapsed))
	return l.report
}

// Step performs one iteration and reports whether the loop is still running.
// Outside Running it does nothing and returns false.
func (l *Loop) Step() bool {
	if l.state != Running {
		return false
	}

	l.logger.Debug("Running loop")
	l.time.Delta()
	l.scheduler.Once(l.time)
	elapsed := l.time.Split()

	pause := FramePause(l.frameDuration, elapsed)
	if pause == 0 {
		l.report.SlowFrames++
		l.logger.Debug(fmt.Sprintf("Loop.Run(): frame took %s, budget %s", elapsed, l.frameDuration))
	}
	l.clock.Sleep(pause)
	l.report.Slept += pause

	l.count++
	l.report.Iterations = l.count
	if l.count >= l.iterations {
		l.state = PreStart
	}
	return l.state == Running
}

// FramePause returns how long to sleep after a frame that took elapsed.
// Frames at or over budget get no sleep.
func FramePause(target, elapsed time.Duration) time.Duration {
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}

// Shutdown marks the loop inactive. The world and schedule are kept.
func (l *Loop) Shutdown() {
	l.started = false
	l.logger.Info("Loop.Shutdown(): Game stopped")
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Started() bool {
	return l.started
}

func (l *Loop) World() *ecs.World {
	return l.world
}

func (l *Loop) Scheduler() *ecs.Scheduler {
	return l.scheduler
}

var _ manager.Manager = (*Loop)(nil)
