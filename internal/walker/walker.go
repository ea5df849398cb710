package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LastsForever/Ai-Context-Dump/internal/ignore"
)

// ErrRootIgnored is returned when the iteration root itself matches an
// ignore rule. Callers must distinguish this configuration error from a
// valid traversal that simply found nothing.
var ErrRootIgnored = errors.New("iteration root matches an ignore rule")

// Collect walks the tree under rootDir and returns the surviving files
// sorted by lower-cased, slash-normalized relative path, together with the
// entries that were skipped and why.
//
// Directories matching a prune rule are cut before descent; nothing beneath
// them is visited or evaluated. Sibling visitation order does not matter
// since the final list is explicitly sorted.
func Collect(rootDir string, rules *ignore.RuleSet, opts ...Option) ([]FileEntry, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: resolving root %q: %w", rootDir, err)
	}

	if rules.IgnoreRoot(filepath.Base(absRoot)) {
		return nil, nil, fmt.Errorf("walker: root %q: %w", absRoot, ErrRootIgnored)
	}

	options.Logger.Debug("walker: starting walk at %s", absRoot)

	var entries []FileEntry
	var skipped []SkippedItem

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			options.Logger.Warn("walker: error at %q: %v", path, err)
			skipped = append(skipped, SkippedItem{Path: path, Reason: ReasonSkippedWalkErr, IsDir: d != nil && d.IsDir()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			options.Logger.Error("walker: path calculation failed for %q: %v", path, relErr)
			skipped = append(skipped, SkippedItem{Path: path, Reason: ReasonSkippedPathCalc, IsDir: d.IsDir()})
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		relSlash := filepath.ToSlash(rel)

		if d.IsDir() {
			if rules.PruneDir(d.Name()) {
				skipped = append(skipped, SkippedItem{Path: relSlash, Reason: ReasonPrunedDir, IsDir: true})
				return filepath.SkipDir
			}
			if rules.IgnoreDir(relSlash) {
				skipped = append(skipped, SkippedItem{Path: relSlash, Reason: ReasonIgnoredRule, IsDir: true})
				return filepath.SkipDir
			}
			options.Logger.Debug("walker: descending into %q", relSlash)
			return nil
		}

		if !d.Type().IsRegular() {
			skipped = append(skipped, SkippedItem{Path: relSlash, Reason: ReasonSkippedNotFile})
			return nil
		}

		if rules.IgnoreFile(relSlash) {
			skipped = append(skipped, SkippedItem{Path: relSlash, Reason: ReasonIgnoredRule})
			return nil
		}

		entries = append(entries, FileEntry{Path: path, Rel: relSlash})
		return nil
	})
	if walkErr != nil {
		return nil, skipped, fmt.Errorf("walker: walking %q: %w", absRoot, walkErr)
	}

	sortEntries(entries)
	options.Logger.Debug("walker: collected %d files, skipped %d entries", len(entries), len(skipped))
	return entries, skipped, nil
}

// sortEntries orders entries by lower-cased relative path, with a
// case-sensitive tie-break so output stays byte-deterministic.
func sortEntries(entries []FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a := strings.ToLower(entries[i].Rel)
		b := strings.ToLower(entries[j].Rel)
		if a == b {
			return entries[i].Rel < entries[j].Rel
		}
		return a < b
	})
}
