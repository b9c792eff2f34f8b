// Package account implements account and credential persistence using
// PostgreSQL.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/personas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/personas-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new account. Emails are stored as given; uniqueness is
// enforced case-insensitively by the schema, surfacing as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := account.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := q.QueryRow(ctx, `
		INSERT INTO accounts (id, email, display_name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, display_name, created_at`,
		id, account.Email, account.DisplayName, time.Now().UTC(),
	)

	var created domain.Account
	err := row.Scan(&created.ID, &created.Email, &created.DisplayName, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return &created, nil
}

// GetByID returns an account by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT id, email, display_name, created_at FROM accounts WHERE id = $1`, id)

	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.DisplayName, &account.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return &account, nil
}

// GetByEmail returns an account by email, matched case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT id, email, display_name, created_at FROM accounts WHERE lower(email) = lower($1)`,
		email)

	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.DisplayName, &account.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}
	return &account, nil
}

// SetCredential stores or replaces the password hash for an account.
func (r *Repo) SetCredential(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	_, err := q.Exec(ctx, `
		INSERT INTO credentials (account_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (account_id)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at`,
		accountID, passwordHash, now,
	)
	if err != nil {
		return postgres.MapError(err, "credential", accountID)
	}
	return nil
}

// GetCredential returns the stored credential for an account.
func (r *Repo) GetCredential(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT account_id, password_hash, created_at, updated_at
		 FROM credentials WHERE account_id = $1`, accountID)

	var cred domain.Credential
	err := row.Scan(&cred.AccountID, &cred.PasswordHash, &cred.CreatedAt, &cred.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "credential", accountID)
	}
	return &cred, nil
}
