package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/pkg/ctxutil"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &LoginResult{Session: session, User: user}, nil
}

// Me returns the user bound to the request context by the auth middleware.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ValidateSession resolves a session token to a user id.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateSession(ctx context.Context, token string) (int64, error) {
	userID, err := s.sessions.Validate(token)
	if err != nil {
		s.log.DebugContext(ctx, "session rejected", slog.String("error", err.Error()))
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}
