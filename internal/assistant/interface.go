package assistant

import (
	"context"

	"github.com/31d4r/Raven/internal/model"
	"github.com/31d4r/Raven/internal/pipeline"
	"github.com/31d4r/Raven/internal/prompt"
)

// Assistant answers questions and writes podcast scripts grounded in a project's files.
type Assistant interface {
	// Extract builds the project's context without calling the model.
	Extract(ctx context.Context, projectID int64) (pipeline.Report, error)
	Ask(ctx context.Context, projectID int64, question string) (*Answer, error)
	Podcast(ctx context.Context, projectID int64, style prompt.Style, length prompt.Length) (*Answer, error)
}

// ProjectFiles is the read side of the store the assistant needs.
type ProjectFiles interface {
	Project(ctx context.Context, id int64) (*model.Project, error)
	Files(ctx context.Context, projectID int64) ([]model.FileRecord, error)
}

// Answer is the model's reply. Warnings lists per-file extraction failures
// and is only filled when engine errors are surfaced.
type Answer struct {
	Project  *model.Project
	Text     string
	Warnings []string
}
