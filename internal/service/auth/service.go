package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localcrm/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out session_manager_mock_test.go -pkg auth . sessionManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// sessionManager issues and validates session tokens.
type sessionManager interface {
	Issue(userID int64) (string, error)
	Validate(token string) (int64, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, sessions sessionManager) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
	}
}
