package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

// Register creates an account with a hashed credential and returns a signed
// access token. Account and credential are written in one transaction.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var account *domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		account, createErr = s.accounts.Create(txCtx, &domain.Account{
			Email:       strings.TrimSpace(input.Email),
			DisplayName: strings.TrimSpace(input.DisplayName),
		})
		if createErr != nil {
			return fmt.Errorf("create account: %w", createErr)
		}

		if err := s.accounts.SetCredential(txCtx, account.ID, string(hash)); err != nil {
			return fmt.Errorf("set credential: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", account.ID.String()),
	)

	return &AuthResult{Account: *account, AccessToken: token}, nil
}
