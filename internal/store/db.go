package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// OpenDB connects to the database at path and runs pending migrations.
// Foreign keys are switched on per connection so deletes cascade from projects.
func OpenDB(driver, path string) (*sqlx.DB, error) {
	if driver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		path += sqlitePragmas
	}

	db, err := sqlx.Connect(driver, path)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := RunMigrations(db.DB, driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
