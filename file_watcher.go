package xrt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher delivers the contents of a settings file. It watches the
// parent directory, so a file that does not exist yet or is replaced on
// save is still picked up.
type FileWatcher struct {
	path string
}

// NewFileWatcher watches the file at path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: filepath.Clean(path)}
}

// Watch implements Watcher. It fails if the parent directory cannot be
// watched.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	e := newEmitter()
	go w.run(ctx, watcher, e)
	return e.out, nil
}

// run reads the file on start and after every write, create or rename into
// place, until ctx is canceled or fsnotify shuts down.
func (w *FileWatcher) run(ctx context.Context, watcher *fsnotify.Watcher, e *emitter) {
	defer close(e.out)
	defer watcher.Close()

	if doc, err := os.ReadFile(w.path); err == nil && !e.send(ctx, doc) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			doc, err := os.ReadFile(w.path)
			if err != nil {
				Logger().Debug("settings file unreadable", "path", w.path, "error", err)
				continue
			}
			if !e.send(ctx, doc) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			Logger().Debug("settings watcher error", "path", w.path, "error", err)
		}
	}
}
