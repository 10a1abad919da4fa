// Package config loads the kernel's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// DefaultFrameDuration is one frame at 60 Hz.
const DefaultFrameDuration = 16666666 * time.Nanosecond

type Config struct {
	Loop    LoopConfig    `toml:"loop"`
	Logging LoggingConfig `toml:"logging"`
	Display DisplayConfig `toml:"display"`
	Scene   SceneConfig   `toml:"scene"`
}

type LoopConfig struct {
	FrameDuration time.Duration `toml:"frame_duration"` // target wall time per iteration
	Iterations    int           `toml:"iterations"`     // iterations before Run returns
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Path   string `toml:"path"`
}

type DisplayConfig struct {
	MaxX int `toml:"max_x"`
	MaxY int `toml:"max_y"`
}

type SceneConfig struct {
	Path string `toml:"path"` // optional YAML seed file
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Loop: LoopConfig{
			FrameDuration: DefaultFrameDuration,
			Iterations:    10,
		},
		Logging: LoggingConfig{
			Level:  "debug",
			Format: "console",
			Path:   "gears.log",
		},
		Display: DisplayConfig{
			MaxX: 8,
			MaxY: 8,
		},
	}
}

// Validate rejects values the loop cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Loop.FrameDuration <= 0 {
		errs = append(errs, fmt.Errorf("loop.frame_duration must be positive, got %s", c.Loop.FrameDuration))
	}
	if c.Loop.Iterations < 1 {
		errs = append(errs, fmt.Errorf("loop.iterations must be at least 1, got %d", c.Loop.Iterations))
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Logging.Path == "" {
		errs = append(errs, errors.New("logging.path must not be empty"))
	}
	return errors.Join(errs...)
}
