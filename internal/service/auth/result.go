package auth

import "github.com/heartmarshall/localcrm/internal/domain"

// LoginResult is returned by Login.
type LoginResult struct {
	Session string // signed token for the session cookie
	User    *domain.User
}
