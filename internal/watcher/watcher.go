package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/31d4r/Raven/internal/logger"
)

type implWatcher struct {
	opts      Options
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore *semaphore.Weighted
	wg        sync.WaitGroup
}

// Start handles Create events until ctx is done, then waits for in-flight handlers.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.opts.Dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing imports to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if strings.HasPrefix(filepath.Base(event.Name), ".") || !w.opts.Filter(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)

			if err := w.semaphore.Acquire(ctx, 1); err != nil {
				w.wg.Wait()
				return err
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.semaphore.Release(1)

				if !w.settle(ctx) {
					return
				}
				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to import %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// settle waits SettleDelay so the file is fully written. It reports false if ctx ends first.
func (w *implWatcher) settle(ctx context.Context) bool {
	if w.opts.SettleDelay <= 0 {
		return true
	}
	t := time.NewTimer(w.opts.SettleDelay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
