// Package config loads and validates the settings document.
//
// Settings live in a JSON document whose lines may begin with "//" or "#"
// comments; comment lines are stripped before parsing. Every field has a
// default, and unrecognized values fall back leniently rather than failing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// DefaultSettingsFile is the settings document looked up next to the
// working directory when no explicit path is given.
const DefaultSettingsFile = "ai-context-dump.settings.json"

// ErrSettingsNotFound reports a missing settings document.
var ErrSettingsNotFound = errors.New("settings file not found")

// ErrSettingsInvalid reports a settings document that could not be parsed.
var ErrSettingsInvalid = errors.New("settings file is not valid")

// OutputMode selects which artifacts are produced.
type OutputMode string

const (
	ModeStructure OutputMode = "structure"
	ModeCode      OutputMode = "code"
	ModeBoth      OutputMode = "both"
	ModeSplit     OutputMode = "split"
)

// PathDisplay selects whether file headers show relative or absolute paths.
type PathDisplay string

const (
	PathDisplayRelative PathDisplay = "relative"
	PathDisplayAbsolute PathDisplay = "absolute"
)

// OutputSettings configures the output mode and target filenames.
type OutputSettings struct {
	Mode          OutputMode `mapstructure:"mode"`
	SingleFile    string     `mapstructure:"single_file"`
	StructureFile string     `mapstructure:"structure_file"`
	CodeFile      string     `mapstructure:"code_file"`
	PathStyle     string     `mapstructure:"path_style"`
}

// TargetNames returns every configured output filename. The walker excludes
// these by basename so a run never dumps its own prior output.
func (o OutputSettings) TargetNames() []string {
	return []string{o.SingleFile, o.StructureFile, o.CodeFile}
}

// ClipboardSettings configures the optional clipboard side effect.
type ClipboardSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Text    string `mapstructure:"text"`
}

// IgnoreSettings lists exclusion rules as written by the user.
type IgnoreSettings struct {
	Extensions []string `mapstructure:"extensions"`
	Patterns   []string `mapstructure:"patterns"`
}

// Settings is the validated run configuration, populated once at startup.
type Settings struct {
	Root      string            `mapstructure:"root"`
	OS        string            `mapstructure:"os"`
	Output    OutputSettings    `mapstructure:"output"`
	Clipboard ClipboardSettings `mapstructure:"clipboard"`
	Ignore    IgnoreSettings    `mapstructure:"ignore"`

	// SettingsName is the basename of the loaded document, excluded from
	// traversal when it sits inside the tree.
	SettingsName string `mapstructure:"-"`
}

// PathStyle returns the display separator style for this run.
func (s *Settings) PathStyle() utils.PathStyle {
	return utils.ParsePathStyle(s.OS)
}

// AbsolutePaths reports whether file headers should show absolute paths.
func (s *Settings) AbsolutePaths() bool {
	return PathDisplay(strings.ToLower(strings.TrimSpace(s.Output.PathStyle))) == PathDisplayAbsolute
}

// Load reads, strips, parses, and normalizes the settings document.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("reading settings %q: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadConfig(bytes.NewReader(StripComments(raw))); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSettingsInvalid, path, err)
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSettingsInvalid, path, err)
	}

	settings.SettingsName = baseName(path)
	settings.normalize()
	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("os", "auto")
	v.SetDefault("output.mode", string(ModeBoth))
	v.SetDefault("output.single_file", "structure&code.txt")
	v.SetDefault("output.structure_file", "structure.txt")
	v.SetDefault("output.code_file", "code.txt")
	v.SetDefault("output.path_style", string(PathDisplayRelative))
	v.SetDefault("clipboard.enabled", false)
	v.SetDefault("clipboard.text", "")
	v.SetDefault("ignore.extensions", []string{})
	v.SetDefault("ignore.patterns", []string{})
}

// normalize applies lenient fallbacks: blank or unknown enum values revert
// to their documented defaults instead of failing the run.
func (s *Settings) normalize() {
	if strings.TrimSpace(s.Root) == "" {
		s.Root = "."
	}

	switch OutputMode(strings.ToLower(strings.TrimSpace(string(s.Output.Mode)))) {
	case ModeStructure:
		s.Output.Mode = ModeStructure
	case ModeCode:
		s.Output.Mode = ModeCode
	case ModeSplit:
		s.Output.Mode = ModeSplit
	default:
		s.Output.Mode = ModeBoth
	}

	if strings.TrimSpace(s.Output.SingleFile) == "" {
		s.Output.SingleFile = "structure&code.txt"
	}
	if strings.TrimSpace(s.Output.StructureFile) == "" {
		s.Output.StructureFile = "structure.txt"
	}
	if strings.TrimSpace(s.Output.CodeFile) == "" {
		s.Output.CodeFile = "code.txt"
	}
}

// StripComments removes lines whose first non-whitespace characters are
// "//" or "#", leaving the remaining JSON untouched.
func StripComments(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}

func baseName(path string) string {
	path = utils.NormalizeSlashes(path)
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
