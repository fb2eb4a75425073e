package auth

import "github.com/heartmarshall/localcrm/internal/service/validate"

// LoginInput holds the credentials of a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validate.Struct(i)
}
