package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/localcrm/internal/config"
	"github.com/heartmarshall/localcrm/internal/transport/middleware"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (int64, error)
}

// Handlers are the endpoint groups mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	Accounts   *AccountHandler
	Contacts   *ContactHandler
	Stages     *StageHandler
	Deals      *DealHandler
	Activities *ActivityHandler
	Notes      *NoteHandler
	Dashboard  *DashboardHandler
	Health     *HealthHandler
}

// RouterDeps are the cross-cutting collaborators of the router.
type RouterDeps struct {
	Sessions sessionValidator
	Metrics  *middleware.Metrics // optional; nil disables /metrics
	Limiter  *middleware.RateLimiter
	Auth     config.AuthConfig
	CORS     config.CORSConfig
	Logger   *slog.Logger
}

// NewRouter builds the HTTP handler: probes and metrics at the root, the
// JSON API under /api. Every /api route except login requires a session.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	var metrics middleware.Middleware
	if deps.Metrics != nil {
		metrics = deps.Metrics.Middleware
	}

	r := chi.NewRouter()
	// Logger sits outside Recovery so recovered panics are logged with
	// their 500 status.
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		metrics,
		middleware.CORS(deps.CORS),
	))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.With(deps.Limiter.Limit(deps.Auth.LoginRateLimit)).Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Sessions, deps.Auth.CookieName))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", h.Accounts.List)
				r.Post("/", h.Accounts.Create)
				r.Get("/{id}", h.Accounts.Get)
				r.Put("/{id}", h.Accounts.Update)
				r.Delete("/{id}", h.Accounts.Delete)
			})
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.Contacts.List)
				r.Post("/", h.Contacts.Create)
				r.Get("/{id}", h.Contacts.Get)
				r.Put("/{id}", h.Contacts.Update)
				r.Delete("/{id}", h.Contacts.Delete)
			})
			r.Route("/stages", func(r chi.Router) {
				r.Get("/", h.Stages.List)
				r.Post("/", h.Stages.Create)
				r.Get("/{id}", h.Stages.Get)
				r.Put("/{id}", h.Stages.Update)
				r.Delete("/{id}", h.Stages.Delete)
			})
			r.Route("/deals", func(r chi.Router) {
				r.Get("/", h.Deals.List)
				r.Post("/", h.Deals.Create)
				r.Get("/{id}", h.Deals.Get)
				r.Put("/{id}", h.Deals.Update)
				r.Patch("/{id}/stage", h.Deals.MoveStage)
				r.Delete("/{id}", h.Deals.Delete)
			})
			r.Route("/activities", func(r chi.Router) {
				r.Get("/", h.Activities.List)
				r.Post("/", h.Activities.Create)
				r.Get("/{id}", h.Activities.Get)
				r.Put("/{id}", h.Activities.Update)
				r.Delete("/{id}", h.Activities.Delete)
			})
			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.Notes.List)
				r.Post("/", h.Notes.Create)
				r.Delete("/{id}", h.Notes.Delete)
			})
			r.Get("/dashboard", h.Dashboard.Summary)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "Not found")
		})
	})

	return r
}
