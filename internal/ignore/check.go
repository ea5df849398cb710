package ignore

import (
	"path"

	"github.com/LastsForever/Ai-Context-Dump/internal/utils"
)

// PruneDir reports whether a directory with the given bare name matches a
// derived prune rule. Pruned directories are never descended into.
func (r *RuleSet) PruneDir(name string) bool {
	if r == nil {
		return false
	}
	for _, rule := range r.pruneRules {
		if rule.Matches(name) {
			r.logger.Debug("ignore: pruning directory %q (rule %q)", name, rule.Pattern())
			return true
		}
	}
	return false
}

// IgnoreDir reports whether a directory's root-relative path matches any
// ignore pattern. Prune rules are deliberately not consulted here; pruning
// and pattern exclusion are independent rule sets.
func (r *RuleSet) IgnoreDir(rel string) bool {
	if r == nil || rel == "" || rel == "." {
		return false
	}
	return r.matchesPattern(rel)
}

// IgnoreFile reports whether a file should be excluded, by reserved
// basename, extension, or pattern, in that order.
func (r *RuleSet) IgnoreFile(rel string) bool {
	if r == nil || rel == "" || rel == "." {
		return false
	}
	rel = utils.NormalizeSlashes(rel)
	base := path.Base(rel)

	if _, ok := r.reserved[base]; ok {
		r.logger.Debug("ignore: excluded %q (reserved name)", rel)
		return true
	}
	if ext := path.Ext(base); ext != "" {
		if _, ok := r.extensions[NormalizeExtension(ext)]; ok {
			r.logger.Debug("ignore: excluded %q (extension %s)", rel, ext)
			return true
		}
	}
	return r.matchesPattern(rel)
}

// IgnoreRoot reports whether the iteration root itself would be excluded,
// judged by its bare name as seen from the parent directory.
func (r *RuleSet) IgnoreRoot(name string) bool {
	if r == nil {
		return false
	}
	return r.PruneDir(name) || r.IgnoreDir(name)
}

func (r *RuleSet) matchesPattern(rel string) bool {
	for _, pattern := range r.patterns {
		if pattern.MatchesPath(rel) {
			r.logger.Debug("ignore: excluded %q (pattern %q)", rel, pattern.Pattern())
			return true
		}
	}
	return false
}
