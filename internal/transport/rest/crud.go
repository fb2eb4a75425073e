package rest

import (
	"context"
	"log/slog"
	"net/http"
)

// The serve* helpers run one resource operation end to end: parse, call
// the service, classify the error, write the envelope.

func serveList[E, R any](w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string,
	list func(ctx context.Context) ([]E, error), conv func(*E) R,
) {
	items, err := list(r.Context())
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(items, conv))
}

func serveGet[E, R any](w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string,
	get func(ctx context.Context, id int64) (*E, error), conv func(*E) R,
) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	item, err := get(r.Context(), id)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	writeData(w, http.StatusOK, conv(item))
}

func serveCreate[I, E, R any](w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string,
	create func(ctx context.Context, input I) (*E, error), conv func(*E) R,
) {
	var input I
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	item, err := create(r.Context(), input)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	writeData(w, http.StatusCreated, conv(item))
}

func serveUpdate[I, E, R any](w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string,
	update func(ctx context.Context, id int64, input I) (*E, error), conv func(*E) R,
) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	var input I
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	item, err := update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	writeData(w, http.StatusOK, conv(item))
}

func serveDelete(w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string,
	del func(ctx context.Context, id int64) error,
) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	if err := del(r.Context(), id); err != nil {
		handleError(w, r, log, entity, err)
		return
	}
	writeSuccess(w)
}
