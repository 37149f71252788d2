package logger

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/tslog/config"
	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/sink"
)

// ErrInitialized is returned by Init once the default logger exists
var ErrInitialized = errors.New("default logger already initialized")

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
	defaultOnce   sync.Once
)

// Init creates the process-wide sink from cfg and makes it the default
// logger. It fails if the default logger was already set up, explicitly
// or by an earlier call to Default.
func Init(cfg sink.Config) (*Logger, error) {
	created := false
	defaultOnce.Do(func() {
		setDefault(New(sink.New(cfg)))
		created = true
	})
	if !created {
		return Default(), ErrInitialized
	}
	return Default(), nil
}

// Default returns the default logger. On first use without Init it is
// built from the TSL_* environment variables.
func Default() *Logger {
	defaultOnce.Do(func() {
		setDefault(New(sink.New(fromEnv())))
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger. The previous logger's sink is
// not shut down.
func SetDefault(l *Logger) {
	defaultOnce.Do(func() {})
	setDefault(l)
}

func setDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

func fromEnv() sink.Config {
	settings, err := config.Load("")
	if err != nil {
		sink.NewErrorLog(os.Stderr).Error("invalid environment settings, using defaults", zap.Error(err))
		return sink.Config{}
	}
	cfg, err := settings.SinkConfig()
	if err != nil {
		sink.NewErrorLog(os.Stderr).Error("invalid environment settings, using defaults", zap.Error(err))
		return sink.Config{}
	}
	return cfg
}

// Package-level convenience functions using the default logger

// Log logs msg under cat using the default logger
func Log(cat core.Category, msg interface{}) {
	Default().Log(cat, msg)
}

// Trace logs a trace message using the default logger
func Trace(msg interface{}) {
	Default().Trace(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg interface{}) {
	Default().Debug(msg)
}

// Info logs an info message using the default logger
func Info(msg interface{}) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg interface{}) {
	Default().Warn(msg)
}

// Error logs an error message using the default logger
func Error(msg interface{}) {
	Default().Error(msg)
}

// Results logs a results line using the default logger
func Results(msg interface{}) {
	Default().Results(msg)
}

// Exception logs err with its stack text using the default logger
func Exception(err error) {
	Default().Exception(err)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Resultsf logs a formatted results line using the default logger
func Resultsf(format string, args ...interface{}) {
	Default().Resultsf(format, args...)
}

// AutoLog logs msg with the location of its caller using the default logger
func AutoLog(msg interface{}) {
	l := Default()
	l.Log(core.Info, stackInfo("AutoLog", core.GetCaller(1+l.callerSkip), msg))
}

// ErrFrom is AutoLog at ERROR
func ErrFrom(msg interface{}) {
	l := Default()
	l.Log(core.Error, stackInfo("ErrFrom", core.GetCaller(1+l.callerSkip), msg))
}

// Fatal logs msg, shuts the default sink down and exits the process
func Fatal(msg interface{}) {
	Default().Fatal(msg)
}

// FatalErr logs err, shuts the default sink down and exits the process
func FatalErr(err error) {
	Default().FatalErr(err)
}

// Shutdown drains and closes the default sink
func Shutdown() error {
	return Default().Shutdown()
}

// With creates a child of the default logger with an additional prefix
func With(prefix string) *Logger {
	return Default().With(prefix)
}
