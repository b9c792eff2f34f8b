package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// DeleteIdentity removes one of the owner's identities. Deleting the last
// remaining identity is refused with domain.ErrLastIdentity; the count is
// checked inside the transaction so concurrent deletes cannot race past it.
func (s *Service) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if identityID == uuid.Nil {
		return domain.NewValidationError("identity_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		identity, err := s.identities.GetByID(txCtx, ownerID, identityID)
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}

		count, err := s.identities.CountByOwner(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("count identities: %w", err)
		}
		if count <= 1 {
			return domain.ErrLastIdentity
		}

		if err := s.identities.Delete(txCtx, ownerID, identityID); err != nil {
			return fmt.Errorf("delete identity: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:   ownerID,
			Entity:    domain.AuditEntityIdentity,
			EntityID:  &identityID,
			Operation: domain.AuditOpDelete,
			Changes:   map[string]any{"deleted": auditSnapshot(identity)},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "identity deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("identity_id", identityID.String()),
	)

	return nil
}
