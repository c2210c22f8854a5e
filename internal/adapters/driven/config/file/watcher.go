package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tagsmith-io/tagsmith-cli/internal/logger"
)

// reloadDebounce coalesces the burst of events an editor or secret manager
// produces when it rewrites the config file.
const reloadDebounce = 250 * time.Millisecond

// Watcher reloads a ConfigStore when its file changes on disk, so a
// long-running worker picks up rotated credentials without restarting.
type Watcher struct {
	store    *ConfigStore
	onReload func()
}

// NewWatcher creates a config watcher. onReload, if non-nil, runs after each
// successful reload.
func NewWatcher(store *ConfigStore, onReload func()) *Watcher {
	return &Watcher{store: store, onReload: onReload}
}

// Run watches the config file until ctx is cancelled. It watches the parent
// directory rather than the file itself: most tools replace the file on save,
// which would silently detach a direct file watch.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	cfgPath := w.store.Path()
	if err := fsw.Add(filepath.Dir(cfgPath)); err != nil {
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cfgPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerC = timer.C
			} else {
				timer.Reset(reloadDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", cfgPath)
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watch error: %v", err)
		}
	}
}
