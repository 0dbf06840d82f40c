package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultDebounce coalesces bursts of writes from editors and sync tools
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher calls a reload function when a file changes
type FileWatcher struct {
	path     string
	debounce time.Duration
	reload   func(ctx context.Context) error
	watcher  *fsnotify.Watcher
}

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithDebounce overrides the debounce interval
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		w.debounce = d
	}
}

// New creates a watcher for path. The parent directory is watched so that
// files replaced by rename are still picked up.
func New(path string, reload func(ctx context.Context) error, opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve watched path", goerr.V("path", path))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, goerr.Wrap(err, "failed to watch directory", goerr.V("path", abs))
	}

	w := &FileWatcher{
		path:     abs,
		debounce: DefaultDebounce,
		reload:   reload,
		watcher:  fw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes file events until ctx is done. Reload errors are logged and
// watching continues.
func (w *FileWatcher) Run(ctx context.Context) {
	logger := ctxlog.From(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			logger.Info("Watched file changed, reloading", "path", w.path)
			if err := w.reload(ctx); err != nil {
				logger.Error("Failed to reload watched file", "path", w.path, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("File watcher error", "path", w.path, "error", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close stops watching
func (w *FileWatcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return goerr.Wrap(err, "failed to close file watcher")
	}
	return nil
}
