package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single configuration file. The parent
// directory is watched so that replace-by-rename saves are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   driven.Logger
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, logger driven.Logger) *Watcher {
	if logger == nil {
		logger = driven.NopLogger{}
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// Start begins watching. The returned channel receives one value per settled
// burst of changes and is closed when ctx is done.
func (w *Watcher) Start(ctx context.Context) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", driven.Fields{"path": w.path, "error": err.Error()})

		case <-timer.C:
			w.logger.Debug("config file changed", driven.Fields{"path": w.path})
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// relevant reports whether event touches the watched file's contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
