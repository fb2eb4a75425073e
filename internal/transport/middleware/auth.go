package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/localcrm/pkg/ctxutil"
)

//go:generate moq -out session_validator_mock_test.go -pkg middleware . sessionValidator

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (int64, error)
}

// Auth rejects requests without a valid session with 401. The session is
// read from the named cookie; an Authorization bearer token is accepted
// when no cookie is present.
func Auth(validator sessionValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractSession(r, cookieName)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			userID, err := validator.ValidateSession(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			setHolderUser(r.Context(), userID)
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractSession(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
