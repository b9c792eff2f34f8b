package identity

import (
	"context"
	"fmt"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// ListIdentities returns the owner's identities, primary first, then newest
// first. A non-nil context narrows the result.
func (s *Service) ListIdentities(ctx context.Context, ictx *domain.IdentityContext) ([]*domain.Identity, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ictx != nil && !ictx.IsValid() {
		return nil, domain.NewValidationError("context", "must be one of: legal, work, social, gaming")
	}

	identities, err := s.identities.List(ctx, ownerID, ictx)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	return identities, nil
}
