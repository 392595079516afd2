package curated

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the set whenever the catalog file at path changes. It runs
// until ctx is cancelled. The parent directory is watched rather than the file
// itself so editors that replace the file atomically still trigger a reload.
func (s *Set) Watch(ctx context.Context, path string, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				if err := s.Reload(abs); err != nil {
					logger.Warn("curated catalog reload failed, keeping previous", zap.Error(err))
					continue
				}
				logger.Info("curated catalog reloaded", zap.Int("entries", s.Len()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if err != nil {
					logger.Debug("curated catalog watch error", zap.Error(err))
				}
			}
		}
	}()
	return nil
}
