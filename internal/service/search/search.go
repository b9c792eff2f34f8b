package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

// Search returns discoverable identities in a context, projected to their
// public shape. It fetches one row beyond the page size to decide HasMore,
// and records the access in the requester's audit trail.
func (s *Service) Search(ctx context.Context, input SearchInput) (*Result, error) {
	requesterID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.defaultLimit
	} else if limit > s.maxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", s.maxLimit))
	}

	query := normalizeQuery(input.Query)

	// limit+1: the extra row only signals that another page exists.
	matches, err := s.identities.SearchDiscoverable(ctx, input.Context, query, limit+1)
	if err != nil {
		return nil, fmt.Errorf("search discoverable: %w", err)
	}

	hasMore := len(matches) > limit
	if hasMore {
		matches = matches[:limit]
	}

	result := &Result{
		Identities: make([]domain.PublicIdentity, 0, len(matches)),
		HasMore:    hasMore,
	}
	for _, m := range matches {
		result.Identities = append(result.Identities, m.Public())
	}

	changes := map[string]any{
		"context": input.Context.String(),
		"count":   len(result.Identities),
	}
	if query != nil {
		changes["query"] = *query
	}
	auditErr := s.audit.Log(ctx, domain.AuditRecord{
		OwnerID:   requesterID,
		Entity:    domain.AuditEntityIdentity,
		Operation: domain.AuditOpCrossUserAccess,
		Changes:   changes,
	})
	if auditErr != nil {
		return nil, fmt.Errorf("audit log: %w", auditErr)
	}

	s.log.InfoContext(ctx, "discovery search",
		slog.String("requester_id", requesterID.String()),
		slog.String("context", input.Context.String()),
		slog.Int("count", len(result.Identities)),
		slog.Bool("has_more", hasMore),
	)

	return result, nil
}

// normalizeQuery canonicalizes the free-text filter with
// domain.NormalizeText and drops it entirely when blank.
func normalizeQuery(q *string) *string {
	if q == nil {
		return nil
	}
	normalized := domain.NormalizeText(*q)
	if normalized == "" {
		return nil
	}
	return &normalized
}
