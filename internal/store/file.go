package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/31d4r/Raven/internal/model"
)

// AddFiles copies every path into the project's public folder and records it.
// The whole batch is one transaction: on any failure nothing is recorded and
// the copies made so far are removed.
func (s *implStore) AddFiles(ctx context.Context, projectID int64, paths []string) ([]model.FileRecord, error) {
	project, err := s.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	dir := project.PublicDir()
	if err := s.fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("create public folder: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var copied []string
	cleanup := func() {
		for _, p := range copied {
			if err := s.fs.Remove(p); err != nil {
				s.logger.Warn(ctx, "Failed to remove copy %s: %v", p, err)
			}
		}
	}

	records := make([]model.FileRecord, 0, len(paths))
	for _, src := range paths {
		name := uniqueName(s.fs, dir, filepath.Base(src))
		dst := filepath.Join(dir, name)

		if err := s.fs.Copy(src, dst); err != nil {
			cleanup()
			return nil, fmt.Errorf("copy %s: %w", src, err)
		}
		copied = append(copied, dst)

		rec := model.FileRecord{
			ProjectID:    project.ID,
			Name:         name,
			OriginalPath: src,
			PublicPath:   dst,
			FileType:     fileType(name),
			CreatedAt:    s.now(),
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO files (projectId, name, originalPath, publicPath, fileType, createdAt)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.ProjectID, rec.Name, rec.OriginalPath, rec.PublicPath, rec.FileType, rec.CreatedAt,
		)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("insert file %s: %w", name, err)
		}
		if rec.ID, err = res.LastInsertId(); err != nil {
			cleanup()
			return nil, fmt.Errorf("file id: %w", err)
		}

		records = append(records, rec)
	}

	if err := tx.Commit(); err != nil {
		cleanup()
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Info(ctx, "Added %d file(s) to project %d", len(records), project.ID)
	return records, nil
}

// Files returns the project's files newest first. Files added in the same batch
// share a timestamp, so the id breaks the tie.
func (s *implStore) Files(ctx context.Context, projectID int64) ([]model.FileRecord, error) {
	if projectID == 0 {
		return nil, ErrNotInitialized
	}

	var files []model.FileRecord
	err := s.db.SelectContext(ctx, &files,
		`SELECT * FROM files WHERE projectId = $1 ORDER BY createdAt DESC, id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

func (s *implStore) File(ctx context.Context, id int64) (*model.FileRecord, error) {
	if id == 0 {
		return nil, ErrNotInitialized
	}

	file := &model.FileRecord{}
	err := s.db.GetContext(ctx, file, `SELECT * FROM files WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return file, nil
}

// DeleteFile removes the stored copy best-effort, then the record.
func (s *implStore) DeleteFile(ctx context.Context, id int64) error {
	file, err := s.File(ctx, id)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.fs.Remove(file.PublicPath); err != nil {
		s.logger.Warn(ctx, "Failed to remove stored file %s: %v", file.PublicPath, err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *implStore) FileCount(ctx context.Context, projectID int64) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM files WHERE projectId = $1`, projectID); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}
