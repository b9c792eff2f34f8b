// Package auth implements account registration and credential login.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	SetCredential(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	GetCredential(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error)
}

type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides registration and login.
type Service struct {
	accounts accountRepo
	jwt      jwtManager
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Auth service.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	jwt jwtManager,
	tx txManager,
) *Service {
	return &Service{
		accounts: accounts,
		jwt:      jwt,
		tx:       tx,
		log:      log.With("service", "auth"),
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Account     domain.Account
	AccessToken string
}
