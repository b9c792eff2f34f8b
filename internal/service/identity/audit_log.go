package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// Audit log page bounds. The trail grows without limit, so reads are
// always capped.
const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 200
)

// ListAuditLog returns the owner's most recent audit entries, newest first.
// limit 0 selects the default page size.
func (s *Service) ListAuditLog(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit == 0 {
		limit = DefaultAuditPageSize
	} else if limit < 1 || limit > MaxAuditPageSize {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxAuditPageSize))
	}

	records, err := s.audit.ListByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return records, nil
}

// GetIdentityHistory returns the audit history of one of the owner's
// identities, oldest entry first. A foreign or unknown id reads as
// not-found, like every other owner-scoped lookup.
func (s *Service) GetIdentityHistory(ctx context.Context, identityID uuid.UUID) ([]*domain.AuditRecord, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if identityID == uuid.Nil {
		return nil, domain.NewValidationError("identity_id", "required")
	}

	if _, err := s.identities.GetByID(ctx, ownerID, identityID); err != nil {
		return nil, fmt.Errorf("get identity: %w", err)
	}

	records, err := s.audit.ListByEntity(ctx, domain.AuditEntityIdentity, identityID)
	if err != nil {
		return nil, fmt.Errorf("list identity history: %w", err)
	}
	return records, nil
}
