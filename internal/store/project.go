package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/31d4r/Raven/internal/model"
)

// CreateProject creates the project folder (with its public/ subfolder) eagerly, then the record.
// If the folder name is already taken on disk, the -N collision rule applies.
func (s *implStore) CreateProject(ctx context.Context, name string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.fs.MkdirAll(s.projectsRoot); err != nil {
		return nil, fmt.Errorf("create projects root: %w", err)
	}

	folder := filepath.Join(s.projectsRoot, uniqueName(s.fs, s.projectsRoot, folderName(name)))
	project := &model.Project{
		Name:       name,
		CreatedAt:  s.now(),
		FolderPath: folder,
	}

	if err := s.fs.MkdirAll(project.PublicDir()); err != nil {
		return nil, fmt.Errorf("create project folder: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (name, createdAt, folderPath) VALUES ($1, $2, $3)`,
		project.Name, project.CreatedAt, project.FolderPath,
	)
	if err != nil {
		if rmErr := s.fs.RemoveAll(folder); rmErr != nil {
			s.logger.Warn(ctx, "Failed to remove folder of unsaved project %s: %v", folder, rmErr)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	project.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("project id: %w", err)
	}

	s.logger.Info(ctx, "Project created: %s (id=%d, folder=%s)", project.Name, project.ID, project.FolderPath)
	return project, nil
}

func (s *implStore) Project(ctx context.Context, id int64) (*model.Project, error) {
	if id == 0 {
		return nil, ErrNotInitialized
	}

	project := &model.Project{}
	err := s.db.GetContext(ctx, project, `SELECT * FROM projects WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

// Projects returns every project, newest first.
func (s *implStore) Projects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.SelectContext(ctx, &projects, `SELECT * FROM projects ORDER BY createdAt DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// RenameProject changes the display name only; the id and folder stay put.
func (s *implStore) RenameProject(ctx context.Context, id int64, name string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if id == 0 {
		return nil, ErrNotInitialized
	}

	s.writeMu.Lock()
	res, err := s.db.ExecContext(ctx, `UPDATE projects SET name = $1 WHERE id = $2`, name, id)
	s.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("rename project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrProjectNotFound
	}

	return s.Project(ctx, id)
}

// DeleteProject removes the project folder best-effort, then the record. Files and notes
// go with it through ON DELETE CASCADE, whether or not the folder could be removed.
func (s *implStore) DeleteProject(ctx context.Context, id int64) error {
	project, err := s.Project(ctx, id)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.fs.RemoveAll(project.FolderPath); err != nil {
		s.logger.Warn(ctx, "Failed to remove project folder %s: %v", project.FolderPath, err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info(ctx, "Project deleted: %s (id=%d)", project.Name, project.ID)
	return nil
}

func (s *implStore) ProjectCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM projects`); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// ClearAll deletes every record. Folders on disk are left alone.
func (s *implStore) ClearAll(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"notes", "files", "projects"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	return tx.Commit()
}
