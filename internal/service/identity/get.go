package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// GetIdentity returns one of the owner's identities. An identity belonging
// to another owner is indistinguishable from a missing one.
func (s *Service) GetIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if identityID == uuid.Nil {
		return nil, domain.NewValidationError("identity_id", "required")
	}

	identity, err := s.identities.GetByID(ctx, ownerID, identityID)
	if err != nil {
		return nil, fmt.Errorf("get identity: %w", err)
	}
	return identity, nil
}

// GetPrimaryIdentity returns the owner's primary identity, or
// domain.ErrNotFound when none is marked.
func (s *Service) GetPrimaryIdentity(ctx context.Context) (*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	identity, err := s.identities.GetPrimary(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get primary identity: %w", err)
	}
	return identity, nil
}
