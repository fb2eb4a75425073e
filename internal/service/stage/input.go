package stage

import (
	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/validate"
)

// StageInput is the payload of create and full update. Omitted flags
// default to 0.
type StageInput struct {
	Name       string `json:"name" validate:"required"`
	OrderIndex *int   `json:"order_index" validate:"required"`
	IsWon      *int   `json:"is_won" validate:"omitempty,oneof=0 1"`
	IsLost     *int   `json:"is_lost" validate:"omitempty,oneof=0 1"`
}

// Validate checks all fields and collects all errors.
func (i StageInput) Validate() error {
	return validate.Struct(i)
}

func (i StageInput) params() domain.StageParams {
	p := domain.StageParams{Name: i.Name, OrderIndex: *i.OrderIndex}
	if i.IsWon != nil {
		p.IsWon = *i.IsWon
	}
	if i.IsLost != nil {
		p.IsLost = *i.IsLost
	}
	return p
}
