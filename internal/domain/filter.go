package domain

// Filters hold raw query-string values. An empty field means the filter was
// not supplied. Values are passed to storage verbatim.

// AccountFilter filters the account list.
type AccountFilter struct {
	Search string
}

// ContactFilter filters the contact list.
type ContactFilter struct {
	AccountID string
	Search    string
}

// StageFilter has no recognized keys; stages are always listed in full.
type StageFilter struct{}

// DealFilter filters the deal list. StartDate and EndDate bound close_date
// inclusively.
type DealFilter struct {
	StageID     string
	OwnerUserID string
	StartDate   string
	EndDate     string
	Search      string
}

// ActivityFilter filters the activity list.
type ActivityFilter struct {
	DealID string
}

// NoteFilter filters the note list.
type NoteFilter struct {
	DealID string
}
