package ignore

import (
	"strings"

	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// NewRuleSet compiles extensions and glob patterns into a RuleSet.
// Extensions are normalized to lower-cased, dot-prefixed form; empty entries
// are dropped. Patterns ending in "/" or "/*" additionally derive a
// directory prune rule from their leading portion.
func NewRuleSet(extensions []string, patterns []string, opts ...Option) *RuleSet {
	rules := &RuleSet{
		extensions: make(map[string]struct{}, len(extensions)),
		reserved:   make(map[string]struct{}),
		logger:     utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(rules)
	}

	for _, ext := range extensions {
		if normalized := NormalizeExtension(ext); normalized != "" {
			rules.extensions[normalized] = struct{}{}
		}
	}

	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(utils.NormalizeSlashes(pattern))
		if trimmed == "" {
			continue
		}
		rules.patterns = append(rules.patterns, Compile(trimmed))

		if dirRule, ok := pruneRuleFor(trimmed); ok {
			rules.logger.Debug("ignore: derived prune rule %q from pattern %q", dirRule, trimmed)
			rules.pruneRules = append(rules.pruneRules, Compile(dirRule))
		}
	}

	return rules
}

// NormalizeExtension returns a lower-cased, dot-prefixed extension, or the
// empty string if the input is blank.
func NormalizeExtension(ext string) string {
	trimmed := strings.ToLower(strings.TrimSpace(ext))
	if trimmed == "" || trimmed == "." {
		return ""
	}
	if !strings.HasPrefix(trimmed, ".") {
		trimmed = "." + trimmed
	}
	return trimmed
}

// pruneRuleFor extracts the directory name rule from a pattern that targets
// a directory subtree ("build/" or "build/*"). The returned rule is matched
// against bare directory names.
func pruneRuleFor(pattern string) (string, bool) {
	var stem string
	switch {
	case strings.HasSuffix(pattern, "/*"):
		stem = strings.TrimSuffix(pattern, "/*")
	case strings.HasSuffix(pattern, "/"):
		stem = strings.TrimSuffix(pattern, "/")
	default:
		return "", false
	}
	// Only single-segment stems name a directory directly; deeper stems
	// keep working through full-path pattern matching.
	if stem == "" || strings.Contains(stem, "/") {
		return "", false
	}
	return stem, true
}
