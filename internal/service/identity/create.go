package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// CreateIdentity creates a new identity for the authenticated owner.
// When input.IsPrimary is set, any existing primary is demoted in the same
// transaction so the owner never ends up with two.
func (s *Service) CreateIdentity(ctx context.Context, input CreateIdentityInput) (*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.identities.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count identities: %w", err)
	}
	if count >= s.maxPerOwner {
		return nil, domain.NewValidationError("identities", fmt.Sprintf("limit reached (max %d)", s.maxPerOwner))
	}

	candidate := &domain.Identity{
		OwnerID:        ownerID,
		PersonalName:   strings.TrimSpace(input.PersonalName),
		Context:        input.Context,
		OtherNames:     trimNames(input.OtherNames),
		Pronouns:       trimOrNil(input.Pronouns),
		Title:          trimOrNil(input.Title),
		AvatarURL:      trimOrNil(input.AvatarURL),
		SocialLinks:    input.SocialLinks,
		IsPrimary:      input.IsPrimary,
		IsDiscoverable: input.IsDiscoverable,
	}

	var created *domain.Identity
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsPrimary {
			if err := s.identities.ClearPrimary(txCtx, ownerID); err != nil {
				return fmt.Errorf("clear primary: %w", err)
			}
		}

		var createErr error
		created, createErr = s.identities.Create(txCtx, candidate)
		if createErr != nil {
			return fmt.Errorf("create identity: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:   ownerID,
			Entity:    domain.AuditEntityIdentity,
			EntityID:  &created.ID,
			Operation: domain.AuditOpCreate,
			Changes:   map[string]any{"created": auditSnapshot(created)},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "identity created",
		slog.String("owner_id", ownerID.String()),
		slog.String("identity_id", created.ID.String()),
		slog.String("context", created.Context.String()),
		slog.Bool("primary", created.IsPrimary),
	)

	return created, nil
}

func trimNames(names []string) []string {
	trimmed := make([]string, 0, len(names))
	for _, n := range names {
		trimmed = append(trimmed, strings.TrimSpace(n))
	}
	return trimmed
}
