package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/auth"
)

func TestConfigSetCmd(t *testing.T) {
	t.Run("stores and persists a value", func(t *testing.T) {
		store := newStubStore()

		out, err := executeWithStore(t, store,
			"config", "set", "alfresco.base_url", "https://alfresco.example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://alfresco.example.com", store.values["alfresco.base_url"])
		assert.Equal(t, 1, store.saves)
		assert.Contains(t, out, "alfresco.base_url updated.")
	})

	t.Run("stores integers typed", func(t *testing.T) {
		store := newStubStore()

		_, err := executeWithStore(t, store, "config", "set", "alfresco.rate_per_second", "5")

		require.NoError(t, err)
		assert.Equal(t, int64(5), store.values["alfresco.rate_per_second"])
	})

	t.Run("stores booleans typed", func(t *testing.T) {
		store := newStubStore()

		_, err := executeWithStore(t, store, "config", "set", "some.flag", "true")

		require.NoError(t, err)
		assert.Equal(t, true, store.values["some.flag"])
	})
}

func TestConfigGetCmd(t *testing.T) {
	t.Run("prints the value", func(t *testing.T) {
		store := newStubStore()
		store.values["worker.strategy"] = "bulk"

		out, err := executeWithStore(t, store, "config", "get", "worker.strategy")

		require.NoError(t, err)
		assert.Contains(t, out, "bulk")
	})

	t.Run("errors on an unset key", func(t *testing.T) {
		store := newStubStore()

		_, err := executeWithStore(t, store, "config", "get", "worker.strategy")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not set")
	})
}

func TestConfigShowCmd(t *testing.T) {
	t.Run("masks secrets", func(t *testing.T) {
		store := newStubStore()
		store.values[keyBaseURL] = "https://alfresco.example.com"
		store.values[auth.KeyPassword] = "hunter2hunter2"

		out, err := executeWithStore(t, store, "config", "show")

		require.NoError(t, err)
		assert.Contains(t, out, "https://alfresco.example.com")
		assert.NotContains(t, out, "hunter2hunter2")
		assert.Contains(t, out, "hunt...ter2")
	})

	t.Run("skips unset keys", func(t *testing.T) {
		store := newStubStore()

		out, err := executeWithStore(t, store, "config", "show")

		require.NoError(t, err)
		assert.NotContains(t, out, "nats.url")
	})
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, int64(42), coerceValue("42"))
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, "bulk", coerceValue("bulk"))
	assert.Equal(t, "5.5", coerceValue("5.5"))
}
