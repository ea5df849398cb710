// Package walker handles directory traversal and file collection.
package walker

import (
	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// FileEntry is a regular file that survived filtering.
type FileEntry struct {
	// Path is the absolute filesystem path.
	Path string
	// Rel is the root-relative path with forward-slash separators.
	Rel string
}

// SkippedReason clarifies why an entry was not collected.
type SkippedReason string

const (
	ReasonPrunedDir       SkippedReason = "Pruned (Directory Rule)"
	ReasonIgnoredRule     SkippedReason = "Ignored (Pattern/Extension Rule)"
	ReasonSkippedNotFile  SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedWalkErr  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedPathCalc SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem records a path that was excluded during traversal.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// Options configures Collect.
type Options struct {
	Logger utils.Logger
}

// Option is a functional option for Collect.
type Option func(*Options)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func defaultOptions() Options {
	return Options{Logger: utils.NoopLogger{}}
}
