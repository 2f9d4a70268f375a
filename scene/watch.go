package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"honnef.co/go/bezier"
)

// Watcher reloads a session file whenever it changes on disk.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching the session file at path. The file's directory
// is watched rather than the file itself, so that editors that replace the
// file on save are handled.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("scene: watching %s: %w", path, err)
	}
	return &Watcher{path: abs, w: w}, nil
}

// Run calls fn with the reloaded file, or the error loading it, after every
// change. It returns when ctx is cancelled, and always closes the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(*File, error)) error {
	defer w.w.Close()
	log := bezier.Logger().With("path", w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("session file changed", "op", ev.Op.String())
			fn(Load(w.path))
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}

// Close stops watching without running.
func (w *Watcher) Close() error { return w.w.Close() }
