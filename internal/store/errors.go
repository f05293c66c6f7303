package store

import "errors"

var (
	// ErrNotInitialized is returned for records that have not been persisted yet (zero ID).
	ErrNotInitialized  = errors.New("record not initialized")
	ErrProjectNotFound = errors.New("project not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrEmptyName       = errors.New("name must not be empty")
)
