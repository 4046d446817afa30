package logger

import (
	"sync"

	"github.com/philipp01105/ilog/core"
)

var (
	defaultManager *Manager
	defaultMu      sync.RWMutex
)

func init() {
	// Nothing is attached until a scope is set up, so a library that
	// logs through the default manager stays silent on its own.
	defaultManager = NewManager(nil)
}

// Default returns the default manager
func Default() *Manager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefault replaces the default manager
func SetDefault(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// Package-level convenience functions using the default manager

// GetLogger returns a module logger of the default manager
func GetLogger(module string) *Logger {
	return Default().GetLogger(module)
}

// Setup enters a scope on the default manager
func Setup(cfg Config) (*Scope, error) {
	return Default().Setup(cfg)
}

// Run calls fn inside a scope of the default manager
func Run(cfg Config, fn func(log *Logger) error) error {
	return Default().Run(cfg, fn)
}

// SetGlobalLevel sets the threshold of the default manager
func SetGlobalLevel(level Level) {
	Default().SetGlobalLevel(level)
}

func namespaceLogger() *Logger {
	return Default().GetLogger("").AddCallerSkip(1)
}

// Debug logs a debug message on the namespace logger
func Debug(msg string, args ...interface{}) {
	namespaceLogger().Debug(msg, args...)
}

// Trace logs a trace message on the namespace logger
func Trace(msg string, args ...interface{}) {
	namespaceLogger().Trace(msg, args...)
}

// Info logs an info message on the namespace logger
func Info(msg string, args ...interface{}) {
	namespaceLogger().Info(msg, args...)
}

// Warning logs a warning message on the namespace logger
func Warning(msg string, args ...interface{}) {
	namespaceLogger().Warning(msg, args...)
}

// Error logs an error message on the namespace logger
func Error(msg string, args ...interface{}) {
	namespaceLogger().Error(msg, args...)
}

// Fatal logs a fatal message on the namespace logger. It does not exit.
func Fatal(msg string, args ...interface{}) {
	namespaceLogger().Fatal(msg, args...)
}

// With returns the namespace logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().GetLogger("").With(fields...)
}
