package model

import "time"

type Note struct {
	ID        int64     `db:"id"`
	ProjectID int64     `db:"projectId"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"createdAt"`
}
