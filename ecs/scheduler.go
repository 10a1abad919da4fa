package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in registration order.
type Scheduler struct {
	world       *World
	systems     []System
	queries     []queryField
	systemStats []*systemStatsInternal
	frame       *UpdateFrame
	clock       Clock
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:   world,
		systems: make([]System, 0),
		frame: &UpdateFrame{
			Commands: newCommands(),
			World:    world,
		},
		clock: SystemClock{},
	}
}

// SetClock replaces the clock used to time systems for Stats. It is
// separate from the frame's Time so that timing does not move the
// simulation's anchor.
func (s *Scheduler) SetClock(clock Clock) {
	s.clock = clock
}

// Register adds a system to the scheduler and initializes its Query fields.
func (s *Scheduler) Register(system System) {
	s.initializeQueries(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) initializeQueries(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		query, ok := field.Addr().Interface().(queryField)
		if !ok {
			continue
		}
		query.Init(s.world)
		s.queries = append(s.queries, query)
	}
}

// Once refreshes every registered query, executes all systems once with
// the given time resource and then flushes buffered commands.
func (s *Scheduler) Once(t *Time) {
	s.frame.Time = t

	for _, query := range s.queries {
		query.Execute()
	}

	for i, system := range s.systems {
		start := s.clock.Now()
		system.Execute(s.frame)
		duration := s.clock.Now().Sub(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frame.Commands.Flush(s.world)
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
