package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	for _, name := range []string{"a.hcl", "b.txt", "nested/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	files, err := FindFilesByExtension([]string{dir}, ".hcl")
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, ".hcl", filepath.Ext(f))
	}
}

func TestFindFilesByExtension_DeduplicatesAndSkipsMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.hcl")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	// The same file reachable twice, plus a path that does not exist.
	files, err := FindFilesByExtension([]string{file, dir, filepath.Join(dir, "missing")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}
