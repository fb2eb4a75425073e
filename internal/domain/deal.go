package domain

import "time"

// DefaultCurrency is stored when a deal is written without a currency.
const DefaultCurrency = "USD"

// Deal is a pipeline opportunity. Its stage may move from any stage to any
// other stage.
type Deal struct {
	ID               int64      `db:"id"`
	AccountID        int64      `db:"account_id"`
	PrimaryContactID *int64     `db:"primary_contact_id"`
	Title            string     `db:"title"`
	Amount           float64    `db:"amount"`
	Currency         string     `db:"currency"`
	StageID          int64      `db:"stage_id"`
	OwnerUserID      int64      `db:"owner_user_id"`
	CloseDate        *time.Time `db:"close_date"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// DealParams holds every writable deal field. A full update overwrites all
// of them.
type DealParams struct {
	AccountID        int64
	PrimaryContactID *int64
	Title            string
	Amount           float64
	Currency         string
	StageID          int64
	OwnerUserID      int64
	CloseDate        *time.Time
}

// StageTotal is the number and summed amount of deals in one stage.
type StageTotal struct {
	StageID int64   `db:"stage_id"`
	Count   int64   `db:"deal_count"`
	Amount  float64 `db:"amount"`
}
