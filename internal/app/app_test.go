package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyeade1/directory-tree-context/internal/config"
)

type fakeCopier struct {
	copied string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	f.copied = text
	return f.err
}

func writeFile(t *testing.T, rootDir, relPath, content string) {
	t.Helper()
	fullPath := filepath.Join(rootDir, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}

func quietConfig(rootDir, destination string) *config.Config {
	cfg := config.New()
	cfg.RootDir = rootDir
	cfg.Destination = destination
	cfg.Quiet = true
	cfg.LogLevel = "NONE"
	return cfg
}

func TestRunWritesArtifactToDestination(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "src/app.py", "print('app')\n")
	writeFile(t, rootDir, "src/util.py", "print('util')\n")
	writeFile(t, rootDir, ".git/config", "[core]\n")

	destination := filepath.Join(t.TempDir(), "context.txt")
	cfg := quietConfig(rootDir, destination)
	cfg.IncludePatterns = []string{"**/*.py"}

	require.NoError(t, New(cfg).Run())

	data, err := os.ReadFile(destination)
	require.NoError(t, err)
	artifact := string(data)

	assert.Contains(t, artifact, "Directory Structure:\n-------------------\n")
	assert.Contains(t, artifact, "├── app.py\n")
	assert.Contains(t, artifact, "└── util.py\n")
	assert.Contains(t, artifact, "File: src/app.py\n")
	assert.Contains(t, artifact, "print('util')\n")
	assert.NotContains(t, artifact, ".git")
}

func TestRunStructureOnlyWhenNoIncludes(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "src/app.py", "print('app')\n")

	destination := filepath.Join(t.TempDir(), "context.txt")
	require.NoError(t, New(quietConfig(rootDir, destination)).Run())

	data, err := os.ReadFile(destination)
	require.NoError(t, err)

	assert.Contains(t, string(data), "File Contents:\n-------------\n")
	assert.NotContains(t, string(data), "File: src/app.py")
}

func TestRunStdoutDestination(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "note.txt", "hello\n")

	application := New(quietConfig(rootDir, config.StdoutDestination))
	var stdout bytes.Buffer
	application.Stdout = &stdout

	require.NoError(t, application.Run())
	assert.Contains(t, stdout.String(), "└── note.txt\n")
}

func TestRunMissingRootIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	cfg := quietConfig(missing, config.StdoutDestination)

	err := New(cfg).Run()
	assert.ErrorContains(t, err, "not found")
}

func TestRunRootMustBeDirectory(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "plain.txt", "x")

	cfg := quietConfig(filepath.Join(rootDir, "plain.txt"), config.StdoutDestination)
	err := New(cfg).Run()
	assert.ErrorContains(t, err, "not a directory")
}

func TestRunUnwritableDestinationIsFatal(t *testing.T) {
	rootDir := t.TempDir()
	destination := filepath.Join(t.TempDir(), "missing-dir", "context.txt")

	err := New(quietConfig(rootDir, destination)).Run()
	assert.ErrorContains(t, err, "could not create output file")
}

func TestRunCopiesArtifactToClipboard(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "note.txt", "hello\n")

	cfg := quietConfig(rootDir, filepath.Join(t.TempDir(), "context.txt"))
	cfg.CopyToClipboard = true

	application := New(cfg)
	copier := &fakeCopier{}
	application.Clipboard = copier

	require.NoError(t, application.Run())
	assert.Contains(t, copier.copied, "Directory Structure:")
}

func TestRunBinaryFileProducesSentinelAndSucceeds(t *testing.T) {
	rootDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "blob.bin"), []byte{0x00, 0xff, 0x01}, 0o644))

	destination := filepath.Join(t.TempDir(), "context.txt")
	cfg := quietConfig(rootDir, destination)
	cfg.IncludePatterns = []string{"**/*.bin"}

	require.NoError(t, New(cfg).Run())

	data, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Contains(t, string(data), "└── blob.bin\n")
	assert.Contains(t, string(data), "[binary file - contents skipped]")
}

func TestRunIsIdempotent(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, rootDir, "a/x.py", "x\n")
	writeFile(t, rootDir, "b/y.py", "y\n")

	firstDestination := filepath.Join(t.TempDir(), "first.txt")
	secondDestination := filepath.Join(t.TempDir(), "second.txt")

	cfg := quietConfig(rootDir, firstDestination)
	cfg.IncludePatterns = []string{"**/*.py"}
	require.NoError(t, New(cfg).Run())

	cfg.Destination = secondDestination
	require.NoError(t, New(cfg).Run())

	first, err := os.ReadFile(firstDestination)
	require.NoError(t, err)
	second, err := os.ReadFile(secondDestination)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
