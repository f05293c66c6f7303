package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"

	"github.com/31d4r/Raven/internal/logger"
)

// Options configure a Watcher.
type Options struct {
	Dir           string
	MaxConcurrent int           // default 2
	SettleDelay   time.Duration // wait after Create before handling, so the writer can finish
	Filter        Filter        // nil accepts every file
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Filter == nil {
		opts.Filter = func(string) bool { return true }
	}

	return &implWatcher{
		opts:      opts,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}, nil
}
