package store

import (
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/31d4r/Raven/internal/logger"
)

type implStore struct {
	db           *sqlx.DB
	fs           FileSystem
	projectsRoot string
	logger       logger.Logger
	now          func() time.Time

	writeMu sync.Mutex
}

// New creates a Store over db. Project folders are created under projectsRoot.
// A nil fs means the real filesystem.
func New(db *sqlx.DB, projectsRoot string, fs FileSystem, log logger.Logger) Store {
	if fs == nil {
		fs = OSFileSystem()
	}
	return &implStore{
		db:           db,
		fs:           fs,
		projectsRoot: projectsRoot,
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}
