package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetGet(t *testing.T) {
	t.Run("round-trips string values", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.Set("alfresco.base_url", "https://repo.example.com"))

		assert.Equal(t, "https://repo.example.com", store.GetString("alfresco.base_url"))
	})

	t.Run("missing keys return zero values", func(t *testing.T) {
		store := newTestStore(t)

		assert.Equal(t, "", store.GetString("nope"))
		assert.Equal(t, 0, store.GetInt("nope"))
		assert.False(t, store.GetBool("nope"))

		_, ok := store.Get("nope")
		assert.False(t, ok)
	})

	t.Run("wrong types return zero values", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Set("n", 42))

		assert.Equal(t, "", store.GetString("n"))
		assert.False(t, store.GetBool("n"))
	})
}

func TestConfigStore_Persistence(t *testing.T) {
	t.Run("values survive reopening the store", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Set("alfresco.username", "admin"))
		require.NoError(t, store.Set("worker.strategy", "bulk"))

		reopened, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "admin", reopened.GetString("alfresco.username"))
		assert.Equal(t, "bulk", reopened.GetString("worker.strategy"))
	})

	t.Run("nested TOML tables flatten to dotted keys", func(t *testing.T) {
		dir := t.TempDir()
		cfg := "[alfresco]\nbase_url = \"https://repo\"\nusername = \"admin\"\n\n[worker]\nstrategy = \"per-tag\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0600))

		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		assert.Equal(t, "https://repo", store.GetString("alfresco.base_url"))
		assert.Equal(t, "per-tag", store.GetString("worker.strategy"))
	})

	t.Run("TOML integers read back as int", func(t *testing.T) {
		dir := t.TempDir()
		cfg := "[worker]\nrate_per_second = 5\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0600))

		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		assert.Equal(t, 5, store.GetInt("worker.rate_per_second"))
	})

	t.Run("config file is written with restricted permissions", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Set("alfresco.password", "secret"))

		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing file loads as empty store", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.Load())
		_, ok := store.Get("anything")
		assert.False(t, ok)
	})
}

func TestConfigStore_Load(t *testing.T) {
	t.Run("picks up external edits", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Set("alfresco.password", "old"))

		cfg := "[alfresco]\npassword = \"rotated\"\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(cfg), 0600))

		require.NoError(t, store.Load())
		assert.Equal(t, "rotated", store.GetString("alfresco.password"))
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte("not [valid toml"), 0600))

		assert.Error(t, store.Load())
	})
}
