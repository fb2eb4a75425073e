package activity

import (
	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

// ActivityInput is the payload of create and full update.
type ActivityInput struct {
	DealID         int64   `json:"deal_id" validate:"required"`
	Type           string  `json:"type" validate:"required"`
	Subject        string  `json:"subject" validate:"required"`
	DueDate        *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,oneof=open done"`
	AssignedUserID int64   `json:"assigned_user_id" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i ActivityInput) Validate() error {
	return validate.Struct(i)
}

// params applies the "open" status default.
func (i ActivityInput) params() (domain.ActivityParams, error) {
	dueDate, err := validate.Date("due_date", i.DueDate)
	if err != nil {
		return domain.ActivityParams{}, err
	}
	p := domain.ActivityParams{
		DealID:         i.DealID,
		Type:           i.Type,
		Subject:        i.Subject,
		DueDate:        dueDate,
		Status:         domain.ActivityStatusOpen,
		AssignedUserID: i.AssignedUserID,
	}
	if i.Status != nil && *i.Status != "" {
		p.Status = *i.Status
	}
	return p, nil
}
