// Package identity implements identity management for an authenticated
// owner: CRUD, primary selection and the last-identity guarantee.
package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

type identityRepo interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params domain.IdentityUpdateParams) (*domain.Identity, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, ictx *domain.IdentityContext) ([]*domain.Identity, error)
	GetPrimary(ctx context.Context, ownerID uuid.UUID) (*domain.Identity, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	ClearPrimary(ctx context.Context, ownerID uuid.UUID) error
	MarkPrimary(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.AuditRecord, error)
	ListByEntity(ctx context.Context, entity string, entityID uuid.UUID) ([]*domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMaxPerOwner caps how many identities one account may hold when the
// service is constructed without an explicit limit.
const DefaultMaxPerOwner = 50

// Service provides identity management operations.
type Service struct {
	identities  identityRepo
	audit       auditLogger
	tx          txManager
	maxPerOwner int
	log         *slog.Logger
}

// NewService creates a new Identity service. maxPerOwner <= 0 falls back to
// DefaultMaxPerOwner.
func NewService(
	log *slog.Logger,
	identities identityRepo,
	audit auditLogger,
	tx txManager,
	maxPerOwner int,
) *Service {
	if maxPerOwner <= 0 {
		maxPerOwner = DefaultMaxPerOwner
	}
	return &Service{
		identities:  identities,
		audit:       audit,
		tx:          tx,
		maxPerOwner: maxPerOwner,
		log:         log.With("service", "identity"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
