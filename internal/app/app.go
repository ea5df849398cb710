// Package app wires the pipeline: settings, traversal, indexing, rendering,
// writing, clipboard, report.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LastsForever/Ai-Context-Dump/internal/clipboard"
	"github.com/LastsForever/Ai-Context-Dump/internal/config"
	"github.com/LastsForever/Ai-Context-Dump/internal/ignore"
	"github.com/LastsForever/Ai-Context-Dump/internal/logger"
	"github.com/LastsForever/Ai-Context-Dump/internal/render"
	"github.com/LastsForever/Ai-Context-Dump/internal/report"
	"github.com/LastsForever/Ai-Context-Dump/internal/tree"
	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
	"github.com/LastsForever/Ai-Context-Dump/internal/writer"
)

// ErrRootNotFound reports a configured iteration root that does not exist
// or is not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// Options holds the run-time options supplied through CLI flags.
type Options struct {
	Quiet       bool
	ShowSkipped bool
	UseColors   bool
}

// App executes one full dump run.
type App struct {
	settings *config.Settings
	opts     Options
	log      *logger.Logger
	clip     clipboard.Copier
	console  io.Writer
	errOut   io.Writer
}

// New creates an App around validated settings.
func New(settings *config.Settings, opts Options, log *logger.Logger) *App {
	return &App{
		settings: settings,
		opts:     opts,
		log:      log,
		clip:     clipboard.NewService(),
		console:  os.Stdout,
		errOut:   os.Stderr,
	}
}

// WithClipboard replaces the clipboard implementation.
func (a *App) WithClipboard(c clipboard.Copier) *App {
	if c != nil {
		a.clip = c
	}
	return a
}

// WithConsole redirects the console report.
func (a *App) WithConsole(out io.Writer) *App {
	if out != nil {
		a.console = out
	}
	return a
}

// Run performs the whole pipeline once. Traversal, rendering, and writing
// happen sequentially in a single pass; per-file read failures degrade to
// placeholders inside rendering and never surface here.
func (a *App) Run() error {
	start := time.Now()

	absRoot, err := filepath.Abs(a.settings.Root)
	if err != nil {
		return fmt.Errorf("resolving root %q: %w", a.settings.Root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return fmt.Errorf("accessing root %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, absRoot)
	}

	reserved := append([]string{a.settings.SettingsName}, a.settings.Output.TargetNames()...)
	rules := ignore.NewRuleSet(
		a.settings.Ignore.Extensions,
		a.settings.Ignore.Patterns,
		ignore.WithLogger(a.log),
		ignore.WithReservedNames(reserved...),
	)

	a.infoLog("Scanning directory: %s", absRoot)
	files, skipped, err := walker.Collect(absRoot, rules, walker.WithLogger(a.log))
	if err != nil {
		return err
	}

	index := tree.Build(absRoot, files)

	renderer := render.New().
		WithPathStyle(a.settings.PathStyle()).
		WithAbsolutePaths(a.settings.AbsolutePaths()).
		WithLogger(a.log)

	mode := a.settings.Output.Mode
	var structure, code string
	if mode != config.ModeCode {
		structure = renderer.Structure(absRoot, index)
	}
	if mode != config.ModeStructure {
		code = renderer.Code(files)
	}

	written, err := writer.WriteOutputs(absRoot, a.settings.Output, structure, code, a.log)
	if err != nil {
		return err
	}

	a.copyToClipboard()

	report.PrintWritten(a.console, written, a.opts.UseColors)
	report.PrintResults(a.log, len(files), time.Since(start), a.opts.Quiet)
	if a.opts.ShowSkipped {
		report.PrintSkipped(a.errOut, skipped)
	}
	return nil
}

// copyToClipboard runs the optional clipboard side effect after all writes
// succeeded. Failure is reported as a warning and does not affect the run's
// outcome.
func (a *App) copyToClipboard() {
	if !a.settings.Clipboard.Enabled || strings.TrimSpace(a.settings.Clipboard.Text) == "" {
		return
	}
	if err := a.clip.Copy(a.settings.Clipboard.Text); err != nil {
		a.log.Warn("Clipboard copy failed: %v", err)
		return
	}
	a.infoLog("Clipboard: copied.")
}

func (a *App) infoLog(format string, args ...interface{}) {
	if !a.opts.Quiet {
		a.log.Info(format, args...)
	}
}
