package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// UpdateIdentity applies a partial update to one of the owner's identities.
// Promoting an identity to primary demotes the current holder in the same
// transaction; setting IsPrimary to false simply clears the flag, leaving
// the owner with no primary.
func (s *Service) UpdateIdentity(ctx context.Context, input UpdateIdentityInput) (*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, changed := buildUpdateParams(input)

	var updated *domain.Identity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Ownership check up front so a promote on a foreign identity does
		// not demote the caller's own primary first. The fetched record is
		// the "before" snapshot for the audit trail.
		before, err := s.identities.GetByID(txCtx, ownerID, input.IdentityID)
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}

		if input.IsPrimary != nil && *input.IsPrimary {
			if err := s.identities.ClearPrimary(txCtx, ownerID); err != nil {
				return fmt.Errorf("clear primary: %w", err)
			}
		}

		var updateErr error
		updated, updateErr = s.identities.Update(txCtx, ownerID, input.IdentityID, params)
		if updateErr != nil {
			return fmt.Errorf("update identity: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			OwnerID:   ownerID,
			Entity:    domain.AuditEntityIdentity,
			EntityID:  &updated.ID,
			Operation: domain.AuditOpUpdate,
			Changes: map[string]any{
				"fields": changed,
				"before": auditSnapshot(before),
				"after":  auditSnapshot(updated),
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

	s.log.InfoContext(ctx, "identity updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("identity_id", updated.ID.String()),
		slog.Any("fields", changed),
	)

	return updated, nil
}

// buildUpdateParams maps a validated input onto repository update params and
// returns the names of the fields being changed, for the audit trail.
func buildUpdateParams(input UpdateIdentityInput) (domain.IdentityUpdateParams, []string) {
	var params domain.IdentityUpdateParams
	var changed []string

	if input.PersonalName != nil {
		name := strings.TrimSpace(*input.PersonalName)
		params.PersonalName = &name
		changed = append(changed, "personalName")
	}
	if input.Context != nil {
		params.Context = input.Context
		changed = append(changed, "context")
	}
	if input.OtherNames != nil {
		names := trimNames(*input.OtherNames)
		params.OtherNames = &names
		changed = append(changed, "otherNames")
	}
	if input.Pronouns != nil {
		v := trimOrNil(input.Pronouns) // ptr("") clears
		params.Pronouns = &v
		changed = append(changed, "pronouns")
	}
	if input.Title != nil {
		v := trimOrNil(input.Title)
		params.Title = &v
		changed = append(changed, "title")
	}
	if input.AvatarURL != nil {
		v := trimOrNil(input.AvatarURL)
		params.AvatarURL = &v
		changed = append(changed, "avatarUrl")
	}
	if input.SocialLinks != nil {
		params.SocialLinks = input.SocialLinks
		changed = append(changed, "socialLinks")
	}
	if input.IsPrimary != nil {
		params.IsPrimary = input.IsPrimary
		changed = append(changed, "isPrimary")
	}
	if input.IsDiscoverable != nil {
		params.IsDiscoverable = input.IsDiscoverable
		changed = append(changed, "isDiscoverable")
	}

	return params, changed
}
