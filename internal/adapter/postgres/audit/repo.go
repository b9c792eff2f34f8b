// Package audit implements the audit log repository using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/personas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/personas-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, owner_id, entity, entity_id, operation, changes, created_at`

// Log appends a record to the audit trail. It runs through the querier in
// the context, so when called inside RunInTx the record commits or rolls
// back together with the mutation it describes.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes, err := marshalChanges(record.Changes)
	if err != nil {
		return fmt.Errorf("audit marshal changes: %w", err)
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err = q.Exec(ctx, `
		INSERT INTO audit_log (id, owner_id, entity, entity_id, operation, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, record.OwnerID, record.Entity, record.EntityID,
		string(record.Operation), changes, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "audit record", id)
	}
	return nil
}

// ListByOwner returns the most recent audit records for an owner, newest
// first, capped at limit.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+auditColumns+` FROM audit_log
		 WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "audit record", uuid.Nil)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByEntity returns all audit records for a single entity, oldest first,
// reconstructing its history.
func (r *Repo) ListByEntity(ctx context.Context, entity string, entityID uuid.UUID) ([]*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+auditColumns+` FROM audit_log
		 WHERE entity = $1 AND entity_id = $2 ORDER BY created_at ASC`,
		entity, entityID)
	if err != nil {
		return nil, postgres.MapError(err, "audit record", entityID)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]*domain.AuditRecord, error) {
	records := make([]*domain.AuditRecord, 0)
	for rows.Next() {
		var (
			record  domain.AuditRecord
			op      string
			changes []byte
		)
		err := rows.Scan(&record.ID, &record.OwnerID, &record.Entity,
			&record.EntityID, &op, &changes, &record.CreatedAt)
		if err != nil {
			return nil, err
		}
		record.Operation = domain.AuditOperation(op)
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &record.Changes); err != nil {
				return nil, fmt.Errorf("audit record %s unmarshal changes: %w", record.ID, err)
			}
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func marshalChanges(changes map[string]any) ([]byte, error) {
	if changes == nil {
		changes = map[string]any{}
	}
	return json.Marshal(changes)
}
