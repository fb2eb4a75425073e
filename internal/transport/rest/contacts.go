package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/contact"
)

type contactService interface {
	List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, error)
	Get(ctx context.Context, id int64) (*domain.Contact, error)
	Create(ctx context.Context, input contact.ContactInput) (*domain.Contact, error)
	Update(ctx context.Context, id int64, input contact.ContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// ContactHandler serves /api/contacts.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

// List handles GET /api/contacts?account_id=&search=.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.ContactFilter{
		AccountID: q.Get("account_id"),
		Search:    q.Get("search"),
	}
	serveList(w, r, h.log, "Contact", func(ctx context.Context) ([]domain.Contact, error) {
		return h.svc.List(ctx, f)
	}, toContactResponse)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.log, "Contact", h.svc.Get, toContactResponse)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Contact", h.svc.Create, toContactResponse)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Contact", h.svc.Update, toContactResponse)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Contact", h.svc.Delete)
}
