package domain

// Stage is a pipeline column. IsWon and IsLost are 0/1 flags; they mark
// conventional end states but no transition rule depends on them.
type Stage struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	OrderIndex int    `db:"order_index"`
	IsWon      int    `db:"is_won"`
	IsLost     int    `db:"is_lost"`
}

// StageParams holds every writable stage field.
type StageParams struct {
	Name       string
	OrderIndex int
	IsWon      int
	IsLost     int
}
