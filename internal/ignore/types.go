package ignore

import (
	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// RuleSet holds the compiled exclusion rules for a run. All rules are pure
// exclusions; evaluation is an OR over extensions, patterns, and reserved
// basenames.
type RuleSet struct {
	// extensions holds lower-cased, dot-prefixed suffixes.
	extensions map[string]struct{}

	// patterns are evaluated against root-relative paths.
	patterns []*Matcher

	// pruneRules are derived from patterns ending in "/" or "/*" and are
	// evaluated against bare directory names. A matching directory is cut
	// wholesale, never descended into.
	pruneRules []*Matcher

	// reserved basenames are always excluded, regardless of other rules.
	// Used for the settings file and previously generated output files.
	reserved map[string]struct{}

	logger utils.Logger
}

// Option configures a RuleSet.
type Option func(*RuleSet)

// WithLogger sets the logger used for match tracing.
func WithLogger(logger utils.Logger) Option {
	return func(r *RuleSet) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReservedNames marks exact basenames that are always excluded.
func WithReservedNames(names ...string) Option {
	return func(r *RuleSet) {
		for _, name := range names {
			if name != "" {
				r.reserved[name] = struct{}{}
			}
		}
	}
}
