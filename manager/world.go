package manager

// WorldManager is a lifecycle placeholder for world-level services.
type WorldManager struct {
	started bool
	logger  Logger
}

func NewWorldManager(logger Logger) *WorldManager {
	return &WorldManager{logger: logger}
}

func (w *WorldManager) Type() string {
	return "world_manager"
}

func (w *WorldManager) Startup() {
	w.logger.Info("WorldManager.Startup(): World started")
	w.started = true
}

func (w *WorldManager) Shutdown() {
	w.started = false
}

func (w *WorldManager) Started() bool {
	return w.started
}
