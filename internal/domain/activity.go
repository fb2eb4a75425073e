package domain

import "time"

// Activity statuses.
const (
	ActivityStatusOpen = "open"
	ActivityStatusDone = "done"
)

// Activity is a task (call, meeting, email) attached to a deal.
type Activity struct {
	ID             int64      `db:"id"`
	DealID         int64      `db:"deal_id"`
	Type           string     `db:"type"`
	Subject        string     `db:"subject"`
	DueDate        *time.Time `db:"due_date"`
	Status         string     `db:"status"`
	AssignedUserID int64      `db:"assigned_user_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// ActivityParams holds every writable activity field.
type ActivityParams struct {
	DealID         int64
	Type           string
	Subject        string
	DueDate        *time.Time
	Status         string
	AssignedUserID int64
}
