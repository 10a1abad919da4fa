package manager

import (
	"fmt"

	"github.com/plus3/gears/config"
)

// DisplayManager tracks the bounds of the (headless) display.
type DisplayManager struct {
	started bool
	maxX    int
	maxY    int
	logger  Logger
}

func NewDisplayManager(logger Logger, cfg config.DisplayConfig) *DisplayManager {
	return &DisplayManager{
		maxX:   cfg.MaxX,
		maxY:   cfg.MaxY,
		logger: logger,
	}
}

func (d *DisplayManager) Type() string {
	return "display_manager"
}

func (d *DisplayManager) Startup() {
	d.logger.Info("DisplayManager.Startup(): Current window set")
	d.logger.Info(fmt.Sprintf("DisplayManager.Startup(): max X is %d, max Y is %d", d.maxX, d.maxY))
	d.started = true
}

func (d *DisplayManager) Shutdown() {
	d.started = false
}

func (d *DisplayManager) Started() bool {
	return d.started
}

// Bounds returns the maximum x and y coordinates.
func (d *DisplayManager) Bounds() (int, int) {
	return d.maxX, d.maxY
}
