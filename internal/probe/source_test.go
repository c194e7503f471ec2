package probe

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_WritesBannerAndProgram(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, stem, err := Materialize(dir, "cc -O2", "int main() { return 0; }\n")
	require.NoError(t, err)
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(content), "/* Synthesized probe source."))
	assert.Contains(t, string(content), "Command: cc -O2")
	assert.True(t, strings.HasSuffix(string(content), "int main() { return 0; }\n"))
	assert.Equal(t, stem+".c", path)
}

func TestMaterialize_UniqueNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		path, _, err := Materialize(dir, "cc", "")
		require.NoError(t, err)
		_, dup := seen[path]
		require.False(t, dup, "scratch names must never collide")
		seen[path] = struct{}{}
	}
}

func TestMaterialize_MissingDirIsAnError(t *testing.T) {
	t.Parallel()

	_, _, err := Materialize("/definitely/not/a/real/dir", "cc", "")
	require.Error(t, err, "a scratch failure must propagate, never read as 'not found'")
}
