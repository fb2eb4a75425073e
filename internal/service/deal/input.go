package deal

import (
	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

// DealInput is the payload of create and full update.
type DealInput struct {
	AccountID        int64    `json:"account_id" validate:"required"`
	PrimaryContactID *int64   `json:"primary_contact_id"`
	Title            string   `json:"title" validate:"required"`
	Amount           *float64 `json:"amount" validate:"required,gte=0"`
	Currency         *string  `json:"currency"`
	StageID          int64    `json:"stage_id" validate:"required"`
	OwnerUserID      int64    `json:"owner_user_id" validate:"required"`
	CloseDate        *string  `json:"close_date" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks all fields and collects all errors.
func (i DealInput) Validate() error {
	return validate.Struct(i)
}

// params applies defaults: currency falls back to USD and an empty close
// date is stored as NULL.
func (i DealInput) params() (domain.DealParams, error) {
	closeDate, err := validate.Date("close_date", i.CloseDate)
	if err != nil {
		return domain.DealParams{}, err
	}
	p := domain.DealParams{
		AccountID:        i.AccountID,
		PrimaryContactID: i.PrimaryContactID,
		Title:            i.Title,
		Amount:           *i.Amount,
		Currency:         domain.DefaultCurrency,
		StageID:          i.StageID,
		OwnerUserID:      i.OwnerUserID,
		CloseDate:        closeDate,
	}
	if i.Currency != nil && *i.Currency != "" {
		p.Currency = *i.Currency
	}
	return p, nil
}

// StageMoveInput is the payload of a stage-only patch.
type StageMoveInput struct {
	StageID int64 `json:"stage_id" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i StageMoveInput) Validate() error {
	return validate.Struct(i)
}
