package file

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	t.Run("reloads store after config file change", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Set("alfresco.password", "old"))

		reloaded := make(chan struct{}, 1)
		watcher := NewWatcher(store, func() {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- watcher.Run(ctx) }()

		// Give the watcher time to register before writing.
		time.Sleep(100 * time.Millisecond)
		cfg := "[alfresco]\npassword = \"rotated\"\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(cfg), 0600))

		select {
		case <-reloaded:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for config reload")
		}
		assert.Equal(t, "rotated", store.GetString("alfresco.password"))
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		store := newTestStore(t)
		watcher := NewWatcher(store, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- watcher.Run(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop on cancel")
		}
	})
}
