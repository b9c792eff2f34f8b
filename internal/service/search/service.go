// Package search implements cross-account discovery of identities whose
// owners opted in via the discoverable flag. Every access to another
// account's data leaves an audit trace.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

type discoveryRepo interface {
	SearchDiscoverable(ctx context.Context, ictx domain.IdentityContext, query *string, limit int) ([]*domain.Identity, error)
	GetDiscoverableByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Limit defaults applied when the service is constructed with zeros.
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Service provides discovery over discoverable identities.
type Service struct {
	identities   discoveryRepo
	audit        auditLogger
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// NewService creates a new Search service. Non-positive limits fall back to
// DefaultLimit / MaxLimit.
func NewService(
	log *slog.Logger,
	identities discoveryRepo,
	audit auditLogger,
	defaultLimit, maxLimit int,
) *Service {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	return &Service{
		identities:   identities,
		audit:        audit,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		log:          log.With("service", "search"),
	}
}
