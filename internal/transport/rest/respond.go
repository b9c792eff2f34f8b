package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/internal/format"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError includes the per-field breakdown so clients can
// highlight the offending inputs.
func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": verr.FieldMap(),
	})
}

// respondFormatted writes a success body in the negotiated representation.
func respondFormatted(w http.ResponseWriter, r *http.Request, status int, marshal func(format.Format) ([]byte, error)) {
	f := format.Negotiate(r.Header.Get("Accept"))
	body, err := marshal(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", format.ContentType(f))
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// respondFormattedError writes an error in the negotiated representation so
// a CSV or XML consumer never has to parse a JSON failure body.
func respondFormattedError(w http.ResponseWriter, r *http.Request, status int, message string) {
	f := format.Negotiate(r.Header.Get("Accept"))
	w.Header().Set("Content-Type", format.ContentType(f))
	w.WriteHeader(status)
	w.Write(format.MarshalError(f, message)) //nolint:errcheck
}

// handleError maps a service error onto a plain JSON response. Used by the
// mutation endpoints, which always speak JSON.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.Is(err, domain.ErrLastIdentity):
		writeError(w, http.StatusBadRequest, domain.ErrLastIdentity.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// handleErrorNegotiated maps a service error onto the representation the
// client asked for. Used by the read endpoints.
func handleErrorNegotiated(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondFormattedError(w, r, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrValidation):
		respondFormattedError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondFormattedError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		respondFormattedError(w, r, http.StatusUnauthorized, "Unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		respondFormattedError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
