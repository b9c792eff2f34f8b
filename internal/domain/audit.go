package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only audit log entry. It is written in the
// same transaction as the mutation it describes and is never updated or
// deleted by the application.
//
// For mutations OwnerID is the account whose data changed. For
// cross-user-access entries it is the account that performed the read,
// and Changes holds access metadata (context, query, count) rather than
// record contents.
type AuditRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Entity    string // always AuditEntityIdentity
	EntityID  *uuid.UUID
	Operation AuditOperation
	Changes   map[string]any
	CreatedAt time.Time
}
