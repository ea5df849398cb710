// Package writer serializes rendered artifacts to output files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/LastsForever/Ai-Context-Dump/internal/config"
	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// WrittenFile describes one output file after a successful write.
type WrittenFile struct {
	Path  string // absolute
	Chars int    // rune count of the written content
}

// WriteOutputs writes the rendered artifacts according to the output mode:
//
//	structure  single_file                  structure only
//	code       single_file                  file dump only
//	split      structure_file, code_file    structure / dump separately
//	both       single_file                  structure then dump
//
// Targets are resolved against root; parent directories are created as
// needed and existing files are overwritten.
func WriteOutputs(root string, output config.OutputSettings, structure, code string, log utils.Logger) ([]WrittenFile, error) {
	target := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(root, name)
	}

	var written []WrittenFile
	write := func(name, content string) error {
		file, err := writeFile(target(name), content)
		if err != nil {
			return err
		}
		log.Debug("writer: wrote %s (%d chars)", file.Path, file.Chars)
		written = append(written, file)
		return nil
	}

	switch output.Mode {
	case config.ModeStructure:
		if err := write(output.SingleFile, structure); err != nil {
			return written, err
		}
	case config.ModeCode:
		if err := write(output.SingleFile, code); err != nil {
			return written, err
		}
	case config.ModeSplit:
		if err := write(output.StructureFile, structure); err != nil {
			return written, err
		}
		if err := write(output.CodeFile, code); err != nil {
			return written, err
		}
	default: // both
		if err := write(output.SingleFile, structure+"\n"+code); err != nil {
			return written, err
		}
	}
	return written, nil
}

func writeFile(path, content string) (WrittenFile, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WrittenFile{}, fmt.Errorf("writer: creating directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return WrittenFile{}, fmt.Errorf("writer: writing %q: %w", path, err)
	}
	return WrittenFile{Path: path, Chars: utf8.RuneCountInString(content)}, nil
}
