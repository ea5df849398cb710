// Package tree reconstructs a directory hierarchy from a flat file list.
package tree

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
)

// Child is one entry in a directory's ordered children list.
type Child struct {
	Name  string
	Path  string // absolute
	IsDir bool
}

// Index maps a directory's absolute path to its ordered immediate children.
// Directories absent from the index have no surviving descendants.
type Index map[string][]Child

// Build derives the implied hierarchy from the surviving files: for each
// file it walks upward to the root (inclusive), inserting every
// (parent, child) edge exactly once. Intermediate directories appear purely
// because a surviving descendant requires them; nothing is re-scanned.
func Build(root string, files []walker.FileEntry) Index {
	index := make(Index)
	seen := make(map[string]map[string]struct{})

	rootClean := filepath.Clean(root)
	insert := func(parent string, child Child) {
		names, ok := seen[parent]
		if !ok {
			names = make(map[string]struct{})
			seen[parent] = names
		}
		if _, dup := names[child.Name]; dup {
			return
		}
		names[child.Name] = struct{}{}
		index[parent] = append(index[parent], child)
	}

	for _, file := range files {
		child := Child{
			Name:  filepath.Base(file.Path),
			Path:  filepath.Clean(file.Path),
			IsDir: false,
		}
		parent := filepath.Dir(child.Path)
		for {
			insert(parent, child)
			if parent == rootClean {
				break
			}
			next := filepath.Dir(parent)
			if next == parent {
				// Reached the filesystem root without meeting the
				// iteration root; nothing above it is represented.
				break
			}
			child = Child{Name: filepath.Base(parent), Path: parent, IsDir: true}
			parent = next
		}
	}

	for parent := range index {
		sortChildren(index[parent])
	}
	return index
}

// sortChildren orders directories before files, each group alphabetically by
// case-insensitive name with a case-sensitive tie-break.
func sortChildren(children []Child) {
	sort.Slice(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		a := strings.ToLower(children[i].Name)
		b := strings.ToLower(children[j].Name)
		if a == b {
			return children[i].Name < children[j].Name
		}
		return a < b
	})
}
