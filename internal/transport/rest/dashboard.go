package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/service/dashboard"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(w, r, h.log, "Dashboard", err)
		return
	}
	writeData(w, http.StatusOK, toDashboardResponse(s))
}
