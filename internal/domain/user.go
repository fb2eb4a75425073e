package domain

import "time"

// User is an authenticated CRM operator. Deals, activities and notes refer
// to users as owner, assignee and author.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}
