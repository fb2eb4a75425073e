package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/note"
)

type noteService interface {
	List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)
	Create(ctx context.Context, input note.NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error
}

// NoteHandler serves /api/notes. Notes have no update route.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.NoteFilter{DealID: r.URL.Query().Get("deal_id")}
	serveList(w, r, h.log, "Note", func(ctx context.Context) ([]domain.Note, error) {
		return h.svc.List(ctx, f)
	}, toNoteResponse)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.log, "Note", h.svc.Create, toNoteResponse)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.log, "Note", h.svc.Delete)
}
