package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	svc    authService
	cookie CookieConfig
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookie CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie, log: logger.With("handler", "auth")}
}

// Login handles POST /api/auth/login. On success the session cookie is set
// and the user is returned.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input auth.LoginInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, h.log, "User", err)
		return
	}

	result, err := h.svc.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		handleError(w, r, h.log, "User", err)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Session, int(h.cookie.TTL.Seconds())))
	writeData(w, http.StatusOK, toUserResponse(result.User))
}

// Logout handles POST /api/auth/logout. Sessions are stateless, so logging
// out only expires the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeSuccess(w)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, "User", err)
		return
	}
	writeData(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
