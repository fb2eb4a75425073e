package contact

import (
	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

// ContactInput is the payload of create and full update.
type ContactInput struct {
	AccountID int64   `json:"account_id" validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Title     *string `json:"title"`
}

// Validate checks all fields and collects all errors.
func (i ContactInput) Validate() error {
	return validate.Struct(i)
}

func (i ContactInput) params() domain.ContactParams {
	return domain.ContactParams{
		AccountID: i.AccountID,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Email:     i.Email,
		Phone:     i.Phone,
		Title:     i.Title,
	}
}
