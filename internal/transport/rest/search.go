package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/internal/format"
	"github.com/heartmarshall/personas-backend/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*search.Result, error)
	GetPublicIdentity(ctx context.Context, identityID uuid.UUID) (*domain.PublicIdentity, error)
}

// SearchHandler serves the discovery endpoints. Both require an
// authenticated requester; what is "public" is the data projection, not
// the access.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /public/identities/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := search.SearchInput{
		Context: domain.IdentityContext(q.Get("context")),
	}
	if raw := q.Get("q"); raw != "" {
		input.Query = &raw
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondFormattedError(w, r, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = limit
	}

	result, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleErrorNegotiated(h.log, w, r, err)
		return
	}

	hasMore := result.HasMore
	respondFormatted(w, r, http.StatusOK, func(f format.Format) ([]byte, error) {
		return format.MarshalIdentityList(f, format.NewPublicIdentityViews(result.Identities), r.URL.RequestURI(), &hasMore)
	})
}

// GetPublic handles GET /public/identities/{id}.
func (h *SearchHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondFormattedError(w, r, http.StatusBadRequest, "invalid identity id")
		return
	}

	result, err := h.svc.GetPublicIdentity(r.Context(), id)
	if err != nil {
		handleErrorNegotiated(h.log, w, r, err)
		return
	}

	respondFormatted(w, r, http.StatusOK, func(f format.Format) ([]byte, error) {
		return format.MarshalIdentity(f, format.NewPublicIdentityView(*result), r.URL.Path)
	})
}
