package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCachePersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playerNames.json")

	cache := NewCache(path)
	cache.Set("u1", "Alice")
	cache.Set("u2", "Bob")
	cache.Remove("u2")

	reloaded := NewCache(path)
	require.Equal(t, "Alice", reloaded.Resolve("u1"))
	require.Equal(t, UnknownPlayer, reloaded.Resolve("u2"))
}

func TestCacheMissingFileStartsEmpty(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "missing.json"))
	require.Equal(t, UnknownPlayer, cache.Resolve("u1"))
}

func TestCacheCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playerNames.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cache := NewCache(path)
	require.Equal(t, UnknownPlayer, cache.Resolve("u1"))

	// The cache stays usable after a corrupt load.
	cache.Set("u1", "Alice")
	require.Equal(t, "Alice", cache.Resolve("u1"))
}

func TestCacheCreatesSnapshotDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "playerNames.json")

	cache := NewCache(path)
	cache.Set("u1", "Alice")

	_, err := os.Stat(path)
	require.NoError(t, err)
}
