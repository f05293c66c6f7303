package model

import (
	"path/filepath"
	"time"
)

const publicFolderName = "public"

// FileRecord is one file attached to a project. ID is zero until the store assigns it.
type FileRecord struct {
	ID           int64     `db:"id"`
	ProjectID    int64     `db:"projectId"`
	Name         string    `db:"name"`
	OriginalPath string    `db:"originalPath"`
	PublicPath   string    `db:"publicPath"`
	FileType     string    `db:"fileType"` // lowercase extension of the stored copy, no dot
	CreatedAt    time.Time `db:"createdAt"`
}

func publicDir(folder string) string {
	return filepath.Join(folder, publicFolderName)
}
