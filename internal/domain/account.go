package domain

import "time"

// Account is a tracked company. Deleting an account removes its contacts
// and deals.
type Account struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Industry  *string   `db:"industry"`
	Website   *string   `db:"website"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AccountParams holds every writable account field.
type AccountParams struct {
	Name     string
	Industry *string
	Website  *string
	Phone    *string
	Address  *string
}
