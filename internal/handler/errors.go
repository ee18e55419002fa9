package handler

import (
	"errors"
	"net/http"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/tmdb"
)

// writeError mapea los errores sentinela al status HTTP que corresponde.
// Los errores del upstream TMDB se propagan con su propio status.
func writeError(w http.ResponseWriter, err error) {
	var upstream *tmdb.UpstreamError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrOutOfOrder):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrNotReady):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.As(err, &upstream):
		http.Error(w, err.Error(), upstream.Status)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
