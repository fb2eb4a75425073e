package domain

import "time"

// Note is an immutable comment on a deal.
type Note struct {
	ID           int64     `db:"id"`
	DealID       int64     `db:"deal_id"`
	AuthorUserID int64     `db:"author_user_id"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
}

// NoteParams holds the fields of a new note.
type NoteParams struct {
	DealID       int64
	AuthorUserID int64
	Body         string
}
