// Package ignore provides glob-style exclusion matching for files and
// directories.
//
// The dialect is deliberately small: '*' matches any run of characters
// (including none, and including path separators), '?' matches exactly one
// character, and every other character is literal. Matching is anchored and
// case-insensitive.
package ignore

import (
	"regexp"
	"strings"

	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// Matcher is a compiled glob pattern.
type Matcher struct {
	raw      string
	hasSlash bool
	re       *regexp.Regexp
}

// Compile translates a glob pattern into a Matcher. Backslash separators in
// the pattern are normalized to forward slashes before compilation.
func Compile(pattern string) *Matcher {
	normalized := utils.NormalizeSlashes(pattern)

	var b strings.Builder
	b.WriteString(`(?i)\A`)
	for _, r := range normalized {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`\z`)

	return &Matcher{
		raw:      normalized,
		hasSlash: strings.Contains(normalized, "/"),
		re:       regexp.MustCompile(`(?s)` + b.String()),
	}
}

// Pattern returns the normalized pattern text.
func (m *Matcher) Pattern() string {
	return m.raw
}

// Matches reports whether candidate matches the whole pattern.
func (m *Matcher) Matches(candidate string) bool {
	return m.re.MatchString(candidate)
}

// MatchesPath evaluates the pattern against a root-relative, slash-separated
// path. Patterns containing a slash must match the entire relative path;
// patterns without one match the basename or any individual path segment, so
// "node_modules" excludes files anywhere beneath a directory of that name
// and "*.log" excludes by basename at any depth.
func (m *Matcher) MatchesPath(rel string) bool {
	rel = utils.NormalizeSlashes(rel)
	if m.hasSlash {
		return m.Matches(rel)
	}
	for _, segment := range strings.Split(rel, "/") {
		if m.Matches(segment) {
			return true
		}
	}
	return false
}
