package ecs

// UpdateFrame is handed to every system for one scheduler pass. Time is
// the loop's shared time resource; systems read it, they do not own it.
type UpdateFrame struct {
	Time     *Time
	Commands *Commands
	World    *World
}
