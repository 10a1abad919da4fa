package ecs

import "time"

// Clock is the time source behind a Time resource.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the wall clock and sleeps the calling goroutine.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Time holds the anchor timestamp shared by a loop and its systems.
type Time struct {
	clock  Clock
	anchor time.Time
}

// NewTime creates a time resource anchored at the clock's current time.
func NewTime(clock Clock) *Time {
	return &Time{clock: clock, anchor: clock.Now()}
}

// Delta returns the time elapsed since the anchor and moves the anchor to now.
func (t *Time) Delta() time.Duration {
	now := t.clock.Now()
	d := now.Sub(t.anchor)
	t.anchor = now
	return d
}

// Split returns the time elapsed since the anchor without moving it.
func (t *Time) Split() time.Duration {
	return t.clock.Now().Sub(t.anchor)
}

// ManualClock is a deterministic Clock. Every call to Now advances it by
// Step, and Sleep advances it by the requested duration without blocking.
type ManualClock struct {
	Step time.Duration

	now    time.Time
	sleeps []time.Duration
}

// NewManualClock returns a clock starting at start that advances by step on each read.
func NewManualClock(start time.Time, step time.Duration) *ManualClock {
	return &ManualClock{Step: step, now: start}
}

func (c *ManualClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.Step)
	return now
}

func (c *ManualClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Sleeps returns every duration passed to Sleep, in call order.
func (c *ManualClock) Sleeps() []time.Duration {
	return c.sleeps
}
