package skill

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skills.yaml", `
skills:
  - name: Approach
    outcome: success
    duration: 1s
  - name: Inspect
    outcome: failure
`)

	r, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	d, ok := r.Lookup("Approach")
	require.True(t, ok)
	assert.Equal(t, StatusSuccess, d.Outcome)
	assert.Equal(t, time.Second, d.Duration)

	d, ok = r.Lookup("Inspect")
	require.True(t, ok)
	assert.Equal(t, StatusFailure, d.Outcome)
	assert.Zero(t, d.Duration)
}

func TestLoadRegistry_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "skills:\n\t- tabs are not yaml indentation\n")
		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("unknown outcome", func(t *testing.T) {
		path := writeFile(t, dir, "outcome.yaml", `
skills:
  - name: Approach
    outcome: maybe
`)
		_, err := LoadRegistry(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown outcome")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeFile(t, dir, "duration.yaml", `
skills:
  - name: Approach
    outcome: success
    duration: fast
`)
		_, err := LoadRegistry(path)
		assert.Error(t, err)
	})

	t.Run("duplicate names", func(t *testing.T) {
		path := writeFile(t, dir, "dup.yaml", `
skills:
  - name: Approach
    outcome: success
  - name: Approach
    outcome: failure
`)
		_, err := LoadRegistry(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	writeFile(t, root, ConfigName, "skills: []\n")

	found, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ConfigName), found)
}

func TestFindConfig_Miss(t *testing.T) {
	// A miss walks to the filesystem root and reports cleanly.
	found, err := FindConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}
