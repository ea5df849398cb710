package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/LastsForever/Ai-Context-Dump/internal/app"
	"github.com/LastsForever/Ai-Context-Dump/internal/config"
	"github.com/LastsForever/Ai-Context-Dump/internal/logger"
	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
)

const version = "1.0.0"

// Exit codes per failure class. Configuration problems and root problems
// are distinguishable for callers.
const (
	exitConfigError = 2
	exitRootError   = 3
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, config.ErrSettingsNotFound),
		errors.Is(err, config.ErrSettingsInvalid):
		return exitConfigError
	case errors.Is(err, app.ErrRootNotFound),
		errors.Is(err, walker.ErrRootIgnored):
		return exitRootError
	default:
		return 1
	}
}

func newRootCommand() *cobra.Command {
	var (
		settingsPath string
		verbose      bool
		quiet        bool
		logLevel     string
		noColor      bool
		showSkipped  bool
	)

	cmd := &cobra.Command{
		Use:           "ai-context-dump",
		Short:         "Dump a directory tree and its file contents into an LLM-readable snapshot",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			useColors := !noColor && isatty.IsTerminal(os.Stderr.Fd())
			color.NoColor = !useColors

			log := logger.New(os.Stderr, verbose, useColors)
			if logLevel != "" {
				log.SetLevel(logLevel)
			} else if quiet {
				log.WithLevel(logger.LevelWarn)
			}

			settings, err := config.Load(settingsPath)
			if err != nil {
				log.Error("%v", err)
				return err
			}

			application := app.New(settings, app.Options{
				Quiet:       quiet,
				ShowSkipped: showSkipped,
				UseColors:   useColors,
			}, log)

			if err := application.Run(); err != nil {
				log.Error("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", config.DefaultSettingsFile, "Path to the settings document")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress INFO messages")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Set the logging level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "List skipped files/directories and reasons after the run")

	return cmd
}
