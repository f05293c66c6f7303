package watcher

import "context"

// Watcher monitors an inbox folder and hands new files to an EventHandler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error

// Filter decides which new files are handed to the EventHandler.
type Filter func(filePath string) bool
