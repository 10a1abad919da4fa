// Package manager holds the lifecycle collaborators the host sequences
// around the simulation loop.
package manager

// Manager is a subsystem with a start and stop hook.
type Manager interface {
	Type() string
	Startup()
	Shutdown()
}

// Logger is a leveled message sink. Level filtering belongs to the sink.
type Logger interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}
