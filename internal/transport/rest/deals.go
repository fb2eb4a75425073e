package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/deal"
)

type dealService interface {
	List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error)
	Get(ctx context.Context, id int64) (*domain.Deal, error)
	Create(ctx context.Context, input deal.DealInput) (*domain.Deal, error)
	Update(ctx context.Context, id int64, input deal.DealInput) (*domain.Deal, error)
	MoveStage(ctx context.Context, id int64, input deal.StageMoveInput) (*domain.Deal, error)
	Delete(ctx context.Context, id int64) error
}

// DealHandler serves /api/deals.
type DealHandler struct {
	svc dealService
	log *slog.Logger
}

// NewDealHandler creates a DealHandler.
func NewDealHandler(svc dealService, logger *slog.Logger) *DealHandler {
	return &DealHandler{svc: svc, log: logger.With("handler", "deal")}
}

// List handles GET /api/deals with the stage_id, owner_user_id, start_date,
// end_date and search filters. Values are passed through unparsed.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.DealFilter{
		StageID:     q.Get("stage_id"),
		OwnerUserID: q.Get("owner_user_id"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		Search:      q.Get("search"),
	}
	serveList(w, r, h.log, "Deal", func(ctx context.Context) ([]domain.Deal, error) {
		return h.svc.List(ctx, f)
	}, toDealResponse)
}

func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.log, "Deal", h.svc.Get, toDealResponse)
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Deal", h.svc.Create, toDealResponse)
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Deal", h.svc.Update, toDealResponse)
}

// MoveStage handles PATCH /api/deals/{id}/stage.
func (h *DealHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Deal", h.svc.MoveStage, toDealResponse)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Deal", h.svc.Delete)
}
