// Package logger implements the leveled stderr logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level defines log severity levels.
type Level int

const (
	// Levels from least to most restrictive.
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Logger writes leveled, optionally colored log lines.
type Logger struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Logger at Info level, or Debug level if verbose is set.
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return &Logger{out: out, useColors: useColors, level: level}
}

// WithLevel sets the level and returns the logger for chaining.
func (l *Logger) WithLevel(level Level) *Logger {
	l.level = level
	return l
}

// SetLevel parses a textual level name and applies it.
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(parseLevel(levelStr))
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LevelInfo, "INFO", color.BlueString, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LevelWarn, "WARN", color.YellowString, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LevelError, "ERROR", color.RedString, format, args...)
}

func (l *Logger) emit(level Level, prefix string, colorize func(string, ...interface{}) string, format string, args ...interface{}) {
	if l.level > level {
		return
	}
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
