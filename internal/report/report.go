// Package report prints the end-of-run console summary.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
	"github.com/LastsForever/Ai-Context-Dump/internal/writer"
)

// Logger is the minimal logging interface the report needs.
type Logger interface {
	Info(format string, args ...interface{})
}

// EstimateTokens approximates LLM token usage as character count divided by
// four, rounded up.
func EstimateTokens(chars int) int {
	if chars <= 0 {
		return 0
	}
	return (chars + 3) / 4
}

// PrintWritten lists every generated file with its character count and
// estimated token count.
func PrintWritten(out io.Writer, files []writer.WrittenFile, useColors bool) {
	for _, file := range files {
		path := file.Path
		if useColors {
			path = color.CyanString(path)
		}
		fmt.Fprintf(out, "%s: %d chars, ~%d tokens\n", path, file.Chars, EstimateTokens(file.Chars))
	}
}

// PrintResults logs the overall outcome of a run.
func PrintResults(logger Logger, fileCount int, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Dumped %d files.", fileCount)
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// PrintSkipped lists every entry excluded during traversal and why.
func PrintSkipped(out io.Writer, items []walker.SkippedItem) {
	fmt.Fprintf(out, "--- Skipped Items (%d) ---\n", len(items))
	sorted := make([]walker.SkippedItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR "
		}
		fmt.Fprintf(out, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	fmt.Fprintln(out, "--- End Skipped Items ---")
}
