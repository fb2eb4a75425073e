package domain

import "time"

// Contact is a person at an Account.
type Contact struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	Title     *string   `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ContactParams holds every writable contact field.
type ContactParams struct {
	AccountID int64
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	Title     *string
}
