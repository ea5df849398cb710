package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"log", ".log"},
		{".log", ".log"},
		{" .LOG ", ".log"},
		{"", ""},
		{".", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeExtension(tt.in), "input %q", tt.in)
	}
}

func TestIgnoreFileByExtension(t *testing.T) {
	rules := NewRuleSet([]string{"log", ".TMP"}, nil)

	assert.True(t, rules.IgnoreFile("debug.log"))
	assert.True(t, rules.IgnoreFile("src/Debug.LOG"))
	assert.True(t, rules.IgnoreFile("cache.tmp"))
	assert.False(t, rules.IgnoreFile("debug.log.txt"))
	assert.False(t, rules.IgnoreFile("main.go"))
}

func TestIgnoreFileByReservedName(t *testing.T) {
	rules := NewRuleSet(nil, nil, WithReservedNames("structure.txt", "code.txt", ""))

	assert.True(t, rules.IgnoreFile("structure.txt"))
	assert.True(t, rules.IgnoreFile("deep/nested/code.txt"))
	// Reserved names are exact basenames, case-sensitive.
	assert.False(t, rules.IgnoreFile("Structure.txt"))
	assert.False(t, rules.IgnoreFile("structure.txt.bak"))
}

func TestPruneRuleDerivation(t *testing.T) {
	rules := NewRuleSet(nil, []string{"build/", "dist/*", "src/gen/", "*.log"})

	assert.True(t, rules.PruneDir("build"))
	assert.True(t, rules.PruneDir("dist"))
	assert.True(t, rules.PruneDir("BUILD"))
	// Multi-segment stems never match a bare directory name.
	assert.False(t, rules.PruneDir("gen"))
	// File patterns do not become prune rules.
	assert.False(t, rules.PruneDir("a.log"))
	assert.False(t, rules.PruneDir("builder"))
}

func TestPruneAndPatternSetsAreIndependent(t *testing.T) {
	// A file pattern colliding with a directory name must not prune it.
	rules := NewRuleSet(nil, []string{"vendor/"})

	assert.True(t, rules.PruneDir("vendor"))
	// The trailing-slash pattern itself never matches a file's path.
	assert.False(t, rules.IgnoreFile("vendor"))
	assert.False(t, rules.IgnoreFile("vendor.txt"))
}

func TestIgnoreDir(t *testing.T) {
	rules := NewRuleSet(nil, []string{"node_modules", "out/bin"})

	assert.True(t, rules.IgnoreDir("node_modules"))
	assert.True(t, rules.IgnoreDir("pkg/node_modules"))
	assert.True(t, rules.IgnoreDir("out/bin"))
	assert.False(t, rules.IgnoreDir("out"))
	assert.False(t, rules.IgnoreDir(""))
	assert.False(t, rules.IgnoreDir("."))
}

func TestIgnoreRoot(t *testing.T) {
	rules := NewRuleSet(nil, []string{"secret*", "build/"})

	assert.True(t, rules.IgnoreRoot("secrets"))
	assert.True(t, rules.IgnoreRoot("build"))
	assert.False(t, rules.IgnoreRoot("project"))
}

func TestNilRuleSetIgnoresNothing(t *testing.T) {
	var rules *RuleSet
	assert.False(t, rules.IgnoreFile("a.txt"))
	assert.False(t, rules.IgnoreDir("dir"))
	assert.False(t, rules.PruneDir("dir"))
	assert.False(t, rules.IgnoreRoot("root"))
}
