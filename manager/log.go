package manager

import (
	"fmt"

	"github.com/plus3/gears/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogManager is the leveled logging sink backed by zap. Messages that
// cannot be written are reported on zap's error output (stderr by
// default) and otherwise dropped.
type LogManager struct {
	started bool
	log     *zap.Logger
}

var _ Logger = (*LogManager)(nil)

// NewLogManager builds a file logger from cfg.
func NewLogManager(cfg config.LoggingConfig) (*LogManager, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	return NewLogManagerFrom(log), nil
}

// NewLogManagerFrom wraps an existing zap logger.
func NewLogManagerFrom(log *zap.Logger) *LogManager {
	return &LogManager{log: log}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.Path}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

func (l *LogManager) Type() string {
	return "log_manager"
}

func (l *LogManager) Startup() {
	l.Info("Starting...")
	l.started = true
}

// Shutdown flushes buffered entries. Sync failures are ignored; stderr
// and some terminals reject fsync.
func (l *LogManager) Shutdown() {
	_ = l.log.Sync()
	l.started = false
}

func (l *LogManager) Started() bool {
	return l.started
}

// Logger exposes the underlying zap logger for structured call sites.
func (l *LogManager) Logger() *zap.Logger {
	return l.log
}

func (l *LogManager) Error(msg string) { l.log.Error(msg) }
func (l *LogManager) Warn(msg string)  { l.log.Warn(msg) }
func (l *LogManager) Info(msg string)  { l.log.Info(msg) }
func (l *LogManager) Debug(msg string) { l.log.Debug(msg) }
