package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/account"
)

type accountService interface {
	List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, input account.AccountInput) (*domain.Account, error)
	Update(ctx context.Context, id int64, input account.AccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// AccountHandler serves /api/accounts.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

// List handles GET /api/accounts?search=.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.AccountFilter{Search: r.URL.Query().Get("search")}
	serveList(w, r, h.log, "Account", func(ctx context.Context) ([]domain.Account, error) {
		return h.svc.List(ctx, f)
	}, toAccountResponse)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.log, "Account", h.svc.Get, toAccountResponse)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Account", h.svc.Create, toAccountResponse)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Account", h.svc.Update, toAccountResponse)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Account", h.svc.Delete)
}
