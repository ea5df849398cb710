// Package render turns the collected tree and files into output text.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LastsForever/Ai-Context-Dump/internal/tree"
	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
)

const (
	// StructureTitle heads the tree-structure artifact.
	StructureTitle = "## Project structure"
	// CodeTitle heads the file-dump artifact.
	CodeTitle = "## Files"

	// unreadablePlaceholder substitutes for content that cannot be dumped
	// as text. Emitted in place of the file body, never as an error.
	unreadablePlaceholder = "// [Skipped: unreadable or non-text file]"

	// emptyTreePlaceholder is emitted when no files survived filtering.
	emptyTreePlaceholder = "(no files matched)"

	indentUnit = "  "
)

// Renderer produces the structure listing and per-file content blocks.
type Renderer struct {
	pathStyle     utils.PathStyle
	absolutePaths bool
	logger        utils.Logger
}

// New creates a Renderer showing relative paths in the platform style.
func New() *Renderer {
	return &Renderer{
		pathStyle: utils.PathStyleAuto,
		logger:    utils.NoopLogger{},
	}
}

// WithPathStyle sets the separator style used for displayed paths.
func (r *Renderer) WithPathStyle(style utils.PathStyle) *Renderer {
	r.pathStyle = style
	return r
}

// WithAbsolutePaths switches file headers to absolute paths.
func (r *Renderer) WithAbsolutePaths(enabled bool) *Renderer {
	r.absolutePaths = enabled
	return r
}

// WithLogger sets the logger.
func (r *Renderer) WithLogger(logger utils.Logger) *Renderer {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// StructureLines renders the tree artifact as display lines: title, blank
// separator, the root name with a trailing slash, then each child indented
// two spaces per depth with directories suffixed by a slash.
func (r *Renderer) StructureLines(root string, index tree.Index) []string {
	lines := []string{StructureTitle, ""}
	if len(index) == 0 {
		return append(lines, emptyTreePlaceholder)
	}

	rootClean := filepath.Clean(root)
	lines = append(lines, filepath.Base(rootClean)+"/")

	var descend func(dir string, depth int)
	descend = func(dir string, depth int) {
		indent := strings.Repeat(indentUnit, depth)
		for _, child := range index[dir] {
			if child.IsDir {
				lines = append(lines, indent+child.Name+"/")
				descend(child.Path, depth+1)
				continue
			}
			lines = append(lines, indent+child.Name)
		}
	}
	descend(rootClean, 1)
	return lines
}

// Structure renders the tree artifact as a single string with a trailing
// newline.
func (r *Renderer) Structure(root string, index tree.Index) string {
	return strings.Join(r.StructureLines(root, index), "\n") + "\n"
}

// FileBlock renders one file as a header comment, the file content, and two
// trailing newlines. Unreadable or binary content degrades to a placeholder
// comment; this never fails.
func (r *Renderer) FileBlock(entry walker.FileEntry) string {
	header := fmt.Sprintf("//\n//\t# File Path: %s #\n//\n\n", r.displayPath(entry))

	data, err := os.ReadFile(entry.Path)
	if err != nil || utils.IsBinary(data) {
		if err != nil {
			r.logger.Warn("render: cannot read %q as text: %v", entry.Rel, err)
		} else {
			r.logger.Debug("render: %q looks binary, substituting placeholder", entry.Rel)
		}
		return header + unreadablePlaceholder + "\n\n"
	}

	return header + normalizeNewlines(string(data)) + "\n\n"
}

// Code renders the full file-dump artifact: title, blank line, then every
// file block in the given order.
func (r *Renderer) Code(entries []walker.FileEntry) string {
	var b strings.Builder
	b.WriteString(CodeTitle + "\n\n")
	for _, entry := range entries {
		b.WriteString(r.FileBlock(entry))
	}
	return b.String()
}

func (r *Renderer) displayPath(entry walker.FileEntry) string {
	if r.absolutePaths {
		return utils.DisplayPath(filepath.ToSlash(entry.Path), r.pathStyle)
	}
	return utils.DisplayPath(entry.Rel, r.pathStyle)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
