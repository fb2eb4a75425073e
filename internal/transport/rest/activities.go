package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/activity"
)

type activityService interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	Get(ctx context.Context, id int64) (*domain.Activity, error)
	Create(ctx context.Context, input activity.ActivityInput) (*domain.Activity, error)
	Update(ctx context.Context, id int64, input activity.ActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityHandler serves /api/activities.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.ActivityFilter{DealID: r.URL.Query().Get("deal_id")}
	serveList(w, r, h.log, "Activity", func(ctx context.Context) ([]domain.Activity, error) {
		return h.svc.List(ctx, f)
	}, toActivityResponse)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.log, "Activity", h.svc.Get, toActivityResponse)
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Activity", h.svc.Create, toActivityResponse)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Activity", h.svc.Update, toActivityResponse)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Activity", h.svc.Delete)
}
