// Package utils provides small helpers shared across packages.
package utils

// Logger is the logging interface leaf packages depend on, so they stay
// decoupled from the concrete logger implementation.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards all log messages.
type NoopLogger struct{}

func (NoopLogger) Debug(format string, args ...interface{}) {}
func (NoopLogger) Info(format string, args ...interface{})  {}
func (NoopLogger) Warn(format string, args ...interface{})  {}
func (NoopLogger) Error(format string, args ...interface{}) {}
