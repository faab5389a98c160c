package out

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	catalogout "refdeck/internal/modules/catalog/port/out"
)

// ContentWatcher emits one signal per write or create of the content file.
// Signals that arrive while one is pending are folded into it.
type ContentWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	signals chan struct{}
}

func NewContentWatcher(ctx context.Context, path string, logger *zap.Logger) (catalogout.ChangeNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create content watcher: %w", err)
	}
	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w := &ContentWatcher{
		path:    abs,
		watcher: watcher,
		logger:  logger,
		signals: make(chan struct{}, 1),
	}
	go w.run(ctx)
	return w, nil
}

func (w *ContentWatcher) Changes() <-chan struct{} {
	return w.signals
}

func (w *ContentWatcher) Close() error {
	return w.watcher.Close()
}

func (w *ContentWatcher) run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

func (w *ContentWatcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	w.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	select {
	case w.signals <- struct{}{}:
	default:
	}
}
