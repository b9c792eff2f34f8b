package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// GetPublicIdentity returns the public projection of a discoverable
// identity. Missing and non-discoverable identities are indistinguishable.
// Lookups of identities the requester does not own are audited.
func (s *Service) GetPublicIdentity(ctx context.Context, identityID uuid.UUID) (*domain.PublicIdentity, error) {
	requesterID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if identityID == uuid.Nil {
		return nil, domain.NewValidationError("identity_id", "required")
	}

	identity, err := s.identities.GetDiscoverableByID(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("get discoverable identity: %w", err)
	}

	if identity.OwnerID != requesterID {
		auditErr := s.audit.Log(ctx, domain.AuditRecord{
			OwnerID:   requesterID,
			Entity:    domain.AuditEntityIdentity,
			EntityID:  &identityID,
			Operation: domain.AuditOpCrossUserAccess,
		})
		if auditErr != nil {
			return nil, fmt.Errorf("audit log: %w", auditErr)
		}

		s.log.InfoContext(ctx, "cross-user identity access",
			slog.String("requester_id", requesterID.String()),
			slog.String("identity_id", identityID.String()),
		)
	}

	public := identity.Public()
	return &public, nil
}
