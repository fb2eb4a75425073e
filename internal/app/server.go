package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	postgres "github.com/heartmarshall/localcrm/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/account"
	activityrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/activity"
	contactrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/contact"
	dealrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/deal"
	noterepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/note"
	stagerepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/stage"
	userrepo "github.com/heartmarshall/localcrm/internal/adapter/postgres/user"
	"github.com/heartmarshall/localcrm/internal/auth"
	"github.com/heartmarshall/localcrm/internal/config"
	"github.com/heartmarshall/localcrm/internal/service/account"
	"github.com/heartmarshall/localcrm/internal/service/activity"
	authsvc "github.com/heartmarshall/localcrm/internal/service/auth"
	"github.com/heartmarshall/localcrm/internal/service/contact"
	"github.com/heartmarshall/localcrm/internal/service/dashboard"
	"github.com/heartmarshall/localcrm/internal/service/deal"
	"github.com/heartmarshall/localcrm/internal/service/note"
	"github.com/heartmarshall/localcrm/internal/service/stage"
	"github.com/heartmarshall/localcrm/internal/transport/middleware"
	"github.com/heartmarshall/localcrm/internal/transport/rest"
)

const limiterCleanupInterval = 5 * time.Minute

type schemaChecker interface {
	HasPending(ctx context.Context) (bool, error)
}

// Server is the assembled HTTP application without its listener.
type Server struct {
	Handler http.Handler

	limiter *middleware.RateLimiter
}

// NewServer wires repositories, services and handlers over pool. migrator
// may be nil, in which case /health does not report schema state.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, migrator *postgres.Migrator, logger *slog.Logger) *Server {
	users := userrepo.New(pool)
	accounts := accountrepo.New(pool)
	contacts := contactrepo.New(pool)
	stages := stagerepo.New(pool)
	deals := dealrepo.New(pool)
	activities := activityrepo.New(pool)
	notes := noterepo.New(pool)

	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, users, sessions)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	limiter := middleware.NewRateLimiter(limiterCleanupInterval)

	var schema schemaChecker
	if migrator != nil {
		schema = migrator
	}

	handlers := rest.Handlers{
		Auth: rest.NewAuthHandler(authService, rest.CookieConfig{
			Name:   cfg.Auth.CookieName,
			TTL:    cfg.Auth.SessionTTL,
			Secure: cfg.Auth.CookieSecure,
		}, logger),
		Accounts:   rest.NewAccountHandler(account.NewService(logger, accounts), logger),
		Contacts:   rest.NewContactHandler(contact.NewService(logger, contacts), logger),
		Stages:     rest.NewStageHandler(stage.NewService(logger, stages), logger),
		Deals:      rest.NewDealHandler(deal.NewService(logger, deals), logger),
		Activities: rest.NewActivityHandler(activity.NewService(logger, activities), logger),
		Notes:      rest.NewNoteHandler(note.NewService(logger, notes), logger),
		Dashboard:  rest.NewDashboardHandler(dashboard.NewService(logger, deals, accounts, stages), logger),
		Health:     rest.NewHealthHandler(pool, schema, Version),
	}

	h := rest.NewRouter(handlers, rest.RouterDeps{
		Sessions: authService,
		Metrics:  middleware.NewMetrics(reg),
		Limiter:  limiter,
		Auth:     cfg.Auth,
		CORS:     cfg.CORS,
		Logger:   logger,
	})

	return &Server{Handler: h, limiter: limiter}
}

// Close stops background goroutines owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}
