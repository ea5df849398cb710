package utils

import (
	"path/filepath"
	"strings"
)

// PathStyle selects the separator convention used when displaying a path.
type PathStyle string

const (
	// PathStyleAuto uses the platform's native separator.
	PathStyleAuto PathStyle = "auto"
	// PathStylePosix forces forward slashes.
	PathStylePosix PathStyle = "posix"
	// PathStyleWindows forces backslashes.
	PathStyleWindows PathStyle = "windows"
)

// ParsePathStyle normalizes a user-supplied style value, falling back to
// auto for anything unrecognized.
func ParsePathStyle(value string) PathStyle {
	switch PathStyle(strings.ToLower(strings.TrimSpace(value))) {
	case PathStylePosix:
		return PathStylePosix
	case PathStyleWindows:
		return PathStyleWindows
	default:
		return PathStyleAuto
	}
}

// DisplayPath renders a slash-separated relative path using the given style.
// Matching always happens on the slash-separated form; this is presentation
// only.
func DisplayPath(slashPath string, style PathStyle) string {
	switch style {
	case PathStylePosix:
		return slashPath
	case PathStyleWindows:
		return strings.ReplaceAll(slashPath, "/", `\`)
	default:
		return filepath.FromSlash(slashPath)
	}
}

// NormalizeSlashes converts any backslash separators to forward slashes.
// Applied to both candidate paths and user patterns before matching.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
