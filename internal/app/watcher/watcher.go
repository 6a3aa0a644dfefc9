package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Watcher monitors the configuration file and reloads it when its
// contents settle after a change. Editors that write via rename are
// covered by watching the containing directory.
type Watcher interface {
	Changes() <-chan *config.Config
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	changes   chan *config.Config
	log       logger.Logger

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher over opsdeck.yaml in the working directory
func NewWatcher(log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fsWatcher: fsw,
		changes:   make(chan *config.Config, 1),
		log:       log.WithComponent("watcher"),
	}

	w.debouncer = NewDebouncer(config.DefaultDebounce, w.reload)

	if err := fsw.Add("."); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.processEvents()

	return w, nil
}

// Changes returns the channel receiving reloaded configurations
func (w *watcher) Changes() <-chan *config.Config {
	return w.changes
}

// Close stops watching and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()
	w.fsWatcher.Close()
	close(w.changes)
}

func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != config.ConfigFileName {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debouncer.Trigger()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// reload re-parses the configuration and publishes it; a broken file is
// logged and skipped, keeping the last good config active
func (w *watcher) reload() {
	cfg, _, err := config.Load()
	if err != nil {
		w.log.Warn().Err(err).Msg("config reload failed, keeping previous")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	select {
	case w.changes <- cfg:
	default:
	}

	w.log.Info().Msg("configuration reloaded")
}
