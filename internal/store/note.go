package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/31d4r/Raven/internal/model"
)

func (s *implStore) CreateNote(ctx context.Context, projectID int64, title, content string) (*model.Note, error) {
	if _, err := s.Project(ctx, projectID); err != nil {
		return nil, err
	}

	note := &model.Note{
		ProjectID: projectID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (projectId, title, content, createdAt) VALUES ($1, $2, $3, $4)`,
		note.ProjectID, note.Title, note.Content, note.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	if note.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("note id: %w", err)
	}

	return note, nil
}

// Notes returns the project's notes newest first.
func (s *implStore) Notes(ctx context.Context, projectID int64) ([]model.Note, error) {
	if projectID == 0 {
		return nil, ErrNotInitialized
	}

	var notes []model.Note
	err := s.db.SelectContext(ctx, &notes,
		`SELECT * FROM notes WHERE projectId = $1 ORDER BY createdAt DESC, id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *implStore) Note(ctx context.Context, id int64) (*model.Note, error) {
	if id == 0 {
		return nil, ErrNotInitialized
	}

	note := &model.Note{}
	err := s.db.GetContext(ctx, note, `SELECT * FROM notes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (s *implStore) UpdateNote(ctx context.Context, id int64, title, content string) (*model.Note, error) {
	if id == 0 {
		return nil, ErrNotInitialized
	}

	s.writeMu.Lock()
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = $1, content = $2 WHERE id = $3`, title, content, id)
	s.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNoteNotFound
	}

	return s.Note(ctx, id)
}

func (s *implStore) DeleteNote(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrNotInitialized
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoteNotFound
	}
	return nil
}
