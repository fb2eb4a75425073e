package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/pkg/ctxutil"
)

// handleError is the single classifier from service errors to responses.
// entity names the resource in the 404 message, e.g. "Deal not found".
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "Validation error", Details: ve.Details()})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Validation error")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
