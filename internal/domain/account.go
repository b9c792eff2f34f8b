package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is an authenticated application user. Identities reference
// accounts by owner_id with cascading delete.
type Account struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// Credential stores the local-login password hash for an account.
type Credential struct {
	AccountID    uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
