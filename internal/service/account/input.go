package account

import (
	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

// AccountInput is the payload of create and full update.
type AccountInput struct {
	Name     string  `json:"name" validate:"required"`
	Industry *string `json:"industry"`
	Website  *string `json:"website"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// Validate checks all fields and collects all errors.
func (i AccountInput) Validate() error {
	return validate.Struct(i)
}

func (i AccountInput) params() domain.AccountParams {
	return domain.AccountParams{
		Name:     i.Name,
		Industry: i.Industry,
		Website:  i.Website,
		Phone:    i.Phone,
		Address:  i.Address,
	}
}
