package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

type auditRecordResponse struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	EntityID  *string        `json:"entityId,omitempty"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

type auditLogResponse struct {
	Entries []auditRecordResponse `json:"entries"`
}

func newAuditLogResponse(records []*domain.AuditRecord) auditLogResponse {
	entries := make([]auditRecordResponse, 0, len(records))
	for _, r := range records {
		entry := auditRecordResponse{
			ID:        r.ID.String(),
			Operation: string(r.Operation),
			Changes:   r.Changes,
			CreatedAt: r.CreatedAt,
		}
		if r.EntityID != nil {
			id := r.EntityID.String()
			entry.EntityID = &id
		}
		entries = append(entries, entry)
	}
	return auditLogResponse{Entries: entries}
}

// AuditLog handles GET /audit-log: the owner's own audit trail, newest
// entry first. Audit records are internal bookkeeping, so the endpoint
// answers plain JSON only.
func (h *IdentityHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	records, err := h.svc.ListAuditLog(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newAuditLogResponse(records))
}

// History handles GET /identities/{id}/history: every audit entry ever
// written for one of the owner's identities, oldest first.
func (h *IdentityHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid identity id")
		return
	}

	records, err := h.svc.GetIdentityHistory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newAuditLogResponse(records))
}
