package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// SetPrimaryIdentity promotes one of the owner's identities to primary.
// The current primary, if any, is demoted in the same transaction; the
// partial unique index on storage backs this up should two promotions race.
func (s *Service) SetPrimaryIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if identityID == uuid.Nil {
		return nil, domain.NewValidationError("identity_id", "required")
	}

	var promoted *domain.Identity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Ownership check before touching the current primary; the fetched
		// record doubles as the "before" snapshot for the audit trail.
		before, err := s.identities.GetByID(txCtx, ownerID, identityID)
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}

		if err := s.identities.ClearPrimary(txCtx, ownerID); err != nil {
			return fmt.Errorf("clear primary: %w", err)
		}

		var markErr error
		promoted, markErr = s.identities.MarkPrimary(txCtx, ownerID, identityID)
		if markErr != nil {
			return fmt.Errorf("mark primary: %w", markErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:   ownerID,
			Entity:    domain.AuditEntityIdentity,
			EntityID:  &identityID,
			Operation: domain.AuditOpSetPrimary,
			Changes: map[string]any{
				"before": auditSnapshot(before),
				"after":  auditSnapshot(promoted),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "primary identity changed",
		slog.String("owner_id", ownerID.String()),
		slog.String("identity_id", identityID.String()),
	)

	return promoted, nil
}
