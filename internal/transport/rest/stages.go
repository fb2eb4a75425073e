package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/stage"
)

type stageService interface {
	List(ctx context.Context) ([]domain.Stage, error)
	Get(ctx context.Context, id int64) (*domain.Stage, error)
	Create(ctx context.Context, input stage.StageInput) (*domain.Stage, error)
	Update(ctx context.Context, id int64, input stage.StageInput) (*domain.Stage, error)
	Delete(ctx context.Context, id int64) error
}

// StageHandler serves /api/stages. Stages are always listed in board order.
type StageHandler struct {
	svc stageService
	log *slog.Logger
}

// NewStageHandler creates a StageHandler.
func NewStageHandler(svc stageService, logger *slog.Logger) *StageHandler {
	return &StageHandler{svc: svc, log: logger.With("handler", "stage")}
}

func (h *StageHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.log, "Stage", h.svc.List, toStageResponse)
}

func (h *StageHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.log, "Stage", h.svc.Get, toStageResponse)
}

func (h *StageHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Stage", h.svc.Create, toStageResponse)
}

func (h *StageHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.log, "Stage", h.svc.Update, toStageResponse)
}

func (h *StageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Stage", h.svc.Delete)
}
