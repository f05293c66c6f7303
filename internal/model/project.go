package model

import "time"

// Project is a named workspace. FolderPath holds every stored file copy under its public/ subfolder.
type Project struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	CreatedAt  time.Time `db:"createdAt"`
	FolderPath string    `db:"folderPath"`
}

// PublicDir is the folder stored file copies live in.
func (p *Project) PublicDir() string {
	return publicDir(p.FolderPath)
}
