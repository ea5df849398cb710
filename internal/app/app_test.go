package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LastsForever/Ai-Context-Dump/internal/config"
	"github.com/LastsForever/Ai-Context-Dump/internal/logger"
	"github.com/LastsForever/Ai-Context-Dump/internal/walker"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func loadSettings(t *testing.T, root, document string) *config.Settings {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultSettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))
	settings, err := config.Load(path)
	require.NoError(t, err)
	settings.Root = root
	return settings
}

func newTestApp(settings *config.Settings) *App {
	log := logger.New(io.Discard, false, false)
	return New(settings, Options{Quiet: true}, log).
		WithClipboard(&fakeClipboard{}).
		WithConsole(&bytes.Buffer{})
}

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.x"), []byte("main contents\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "ignored.log"), []byte("log\n"), 0o644))

	settings := loadSettings(t, root, `{"os": "posix", "ignore": {"extensions": [".log"]}}`)
	require.NoError(t, newTestApp(settings).Run())

	out, err := os.ReadFile(filepath.Join(root, "structure&code.txt"))
	require.NoError(t, err)
	text := string(out)

	// The empty build/ directory is absent: the tree is reconstructed
	// purely from surviving files.
	assert.Contains(t, text, "## Project structure\n")
	assert.NotContains(t, text, "build/")
	assert.Contains(t, text, "src/\n    main.x\n")
	assert.NotContains(t, text, "ignored.log")

	assert.Contains(t, text, "## Files\n")
	assert.Contains(t, text, "//\t# File Path: src/main.x #")
	assert.Contains(t, text, "main contents\n")
}

func TestRunSplitMode(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("A\n"), 0o644))

	settings := loadSettings(t, root, `{"output": {"mode": "split"}}`)
	require.NoError(t, newTestApp(settings).Run())

	structure, err := os.ReadFile(filepath.Join(root, "structure.txt"))
	require.NoError(t, err)
	code, err := os.ReadFile(filepath.Join(root, "code.txt"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(structure), "## Project structure\n"))
	assert.NotContains(t, string(structure), "## Files")
	assert.True(t, strings.HasPrefix(string(code), "## Files\n"))
	assert.NotContains(t, string(code), "## Project structure")
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "lib.go"), []byte("package pkg\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# hi\n"), 0o644))

	settings := loadSettings(t, root, `{"os": "posix"}`)

	require.NoError(t, newTestApp(settings).Run())
	first, err := os.ReadFile(filepath.Join(root, "structure&code.txt"))
	require.NoError(t, err)

	// The second run sees the first run's output file inside the tree; it
	// must be excluded by name, keeping the output byte-identical.
	require.NoError(t, newTestApp(settings).Run())
	second, err := os.ReadFile(filepath.Join(root, "structure&code.txt"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunEmptyResultWritesPlaceholder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.log"), []byte("log\n"), 0o644))

	settings := loadSettings(t, root, `{"output": {"mode": "structure"}, "ignore": {"extensions": [".log"]}}`)
	require.NoError(t, newTestApp(settings).Run())

	out, err := os.ReadFile(filepath.Join(root, "structure&code.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "(no files matched)")
}

func TestRunRootNotFound(t *testing.T) {
	settings := loadSettings(t, filepath.Join(t.TempDir(), "missing"), `{}`)
	err := newTestApp(settings).Run()
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestRunRootIgnored(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "private")
	require.NoError(t, os.MkdirAll(root, 0o755))

	settings := loadSettings(t, root, `{"ignore": {"patterns": ["private/"]}}`)
	err := newTestApp(settings).Run()
	assert.ErrorIs(t, err, walker.ErrRootIgnored)
}

func TestRunClipboard(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("A"), 0o644))

	settings := loadSettings(t, root, `{"clipboard": {"enabled": true, "text": "snapshot ready"}}`)
	clip := &fakeClipboard{}
	application := newTestApp(settings).WithClipboard(clip)

	require.NoError(t, application.Run())
	assert.Equal(t, []string{"snapshot ready"}, clip.copied)
}

func TestRunClipboardFailureDoesNotFailRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("A"), 0o644))

	settings := loadSettings(t, root, `{"clipboard": {"enabled": true, "text": "snapshot ready"}}`)
	clip := &fakeClipboard{err: errors.New("no clipboard mechanism")}

	assert.NoError(t, newTestApp(settings).WithClipboard(clip).Run())
}

func TestRunSettingsFileInsideRootIsExcluded(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultSettingsFile), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep.txt"), []byte("K"), 0o644))

	settings := loadSettings(t, root, `{"os": "posix"}`)
	require.NoError(t, newTestApp(settings).Run())

	out, err := os.ReadFile(filepath.Join(root, "structure&code.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), config.DefaultSettingsFile)
	assert.Contains(t, string(out), "keep.txt")
}
