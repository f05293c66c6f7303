package store

import (
	"context"

	"github.com/31d4r/Raven/internal/model"
)

// Store persists projects, their files and notes. Mutations are serialized (single writer);
// reads may run concurrently with extraction.
type Store interface {
	CreateProject(ctx context.Context, name string) (*model.Project, error)
	Project(ctx context.Context, id int64) (*model.Project, error)
	Projects(ctx context.Context) ([]model.Project, error)
	RenameProject(ctx context.Context, id int64, name string) (*model.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	ProjectCount(ctx context.Context) (int, error)

	AddFiles(ctx context.Context, projectID int64, paths []string) ([]model.FileRecord, error)
	Files(ctx context.Context, projectID int64) ([]model.FileRecord, error)
	File(ctx context.Context, id int64) (*model.FileRecord, error)
	DeleteFile(ctx context.Context, id int64) error
	FileCount(ctx context.Context, projectID int64) (int, error)

	CreateNote(ctx context.Context, projectID int64, title, content string) (*model.Note, error)
	Notes(ctx context.Context, projectID int64) ([]model.Note, error)
	Note(ctx context.Context, id int64) (*model.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (*model.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ClearAll(ctx context.Context) error
}
