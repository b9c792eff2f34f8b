package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/internal/format"
	"github.com/heartmarshall/personas-backend/internal/service/identity"
)

// identityService defines the minimal interface needed by IdentityHandler.
type identityService interface {
	CreateIdentity(ctx context.Context, input identity.CreateIdentityInput) (*domain.Identity, error)
	GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error)
	GetPrimaryIdentity(ctx context.Context) (*domain.Identity, error)
	ListIdentities(ctx context.Context, ictx *domain.IdentityContext) ([]*domain.Identity, error)
	UpdateIdentity(ctx context.Context, input identity.UpdateIdentityInput) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
	SetPrimaryIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error)
	ListAuditLog(ctx context.Context, limit int) ([]*domain.AuditRecord, error)
	GetIdentityHistory(ctx context.Context, identityID uuid.UUID) ([]*domain.AuditRecord, error)
}

// IdentityHandler serves the owner-facing identity endpoints.
type IdentityHandler struct {
	svc identityService
	log *slog.Logger
}

// NewIdentityHandler creates an IdentityHandler.
func NewIdentityHandler(svc identityService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{svc: svc, log: logger.With("handler", "identity")}
}

type createIdentityRequest struct {
	PersonalName   string            `json:"personalName"`
	Context        string            `json:"context"`
	OtherNames     []string          `json:"otherNames"`
	Pronouns       *string           `json:"pronouns"`
	Title          *string           `json:"title"`
	AvatarURL      *string           `json:"avatarUrl"`
	SocialLinks    map[string]string `json:"socialLinks"`
	IsPrimary      bool              `json:"isPrimary"`
	IsDiscoverable bool              `json:"isDiscoverable"`
}

type updateIdentityRequest struct {
	PersonalName   *string            `json:"personalName"`
	Context        *string            `json:"context"`
	OtherNames     *[]string          `json:"otherNames"`
	Pronouns       *string            `json:"pronouns"`
	Title          *string            `json:"title"`
	AvatarURL      *string            `json:"avatarUrl"`
	SocialLinks    *map[string]string `json:"socialLinks"`
	IsPrimary      *bool              `json:"isPrimary"`
	IsDiscoverable *bool              `json:"isDiscoverable"`
}

// Create handles POST /identities.
func (h *IdentityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateIdentity(r.Context(), identity.CreateIdentityInput{
		PersonalName:   req.PersonalName,
		Context:        domain.IdentityContext(req.Context),
		OtherNames:     req.OtherNames,
		Pronouns:       req.Pronouns,
		Title:          req.Title,
		AvatarURL:      req.AvatarURL,
		SocialLinks:    req.SocialLinks,
		IsPrimary:      req.IsPrimary,
		IsDiscoverable: req.IsDiscoverable,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, format.NewIdentityView(result))
}

// Get handles GET /identities/{id}.
func (h *IdentityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondFormattedError(w, r, http.StatusBadRequest, "invalid identity id")
		return
	}

	result, err := h.svc.GetIdentity(r.Context(), id)
	if err != nil {
		handleErrorNegotiated(h.log, w, r, err)
		return
	}

	respondFormatted(w, r, http.StatusOK, func(f format.Format) ([]byte, error) {
		return format.MarshalIdentity(f, format.NewIdentityView(result), r.URL.Path)
	})
}

// GetPrimary handles GET /identities/primary.
func (h *IdentityHandler) GetPrimary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPrimaryIdentity(r.Context())
	if err != nil {
		handleErrorNegotiated(h.log, w, r, err)
		return
	}

	respondFormatted(w, r, http.StatusOK, func(f format.Format) ([]byte, error) {
		return format.MarshalIdentity(f, format.NewIdentityView(result), r.URL.Path)
	})
}

// List handles GET /identities. An optional ?context= query parameter
// narrows the list to one context.
func (h *IdentityHandler) List(w http.ResponseWriter, r *http.Request) {
	var ictx *domain.IdentityContext
	if raw := r.URL.Query().Get("context"); raw != "" {
		c := domain.IdentityContext(raw)
		ictx = &c
	}

	results, err := h.svc.ListIdentities(r.Context(), ictx)
	if err != nil {
		handleErrorNegotiated(h.log, w, r, err)
		return
	}

	respondFormatted(w, r, http.StatusOK, func(f format.Format) ([]byte, error) {
		return format.MarshalIdentityList(f, format.NewIdentityViews(results), r.URL.RequestURI(), nil)
	})
}

// Update handles PUT and PATCH /identities/{id}. Both verbs share the
// partial-update semantics: absent fields are left untouched.
func (h *IdentityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid identity id")
		return
	}

	var req updateIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := identity.UpdateIdentityInput{
		IdentityID:     id,
		PersonalName:   req.PersonalName,
		OtherNames:     req.OtherNames,
		Pronouns:       req.Pronouns,
		Title:          req.Title,
		AvatarURL:      req.AvatarURL,
		SocialLinks:    req.SocialLinks,
		IsPrimary:      req.IsPrimary,
		IsDiscoverable: req.IsDiscoverable,
	}
	if req.Context != nil {
		c := domain.IdentityContext(*req.Context)
		input.Context = &c
	}

	result, err := h.svc.UpdateIdentity(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, format.NewIdentityView(result))
}

// Delete handles DELETE /identities/{id}.
func (h *IdentityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid identity id")
		return
	}

	if err := h.svc.DeleteIdentity(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPrimary handles POST /identities/{id}/set-primary.
func (h *IdentityHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid identity id")
		return
	}

	result, err := h.svc.SetPrimaryIdentity(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, format.NewIdentityView(result))
}
