// Package identity implements the Identity repository using PostgreSQL.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/personas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/personas-backend/internal/domain"
)

// Repo provides identity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new identity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const identityColumns = `id, owner_id, personal_name, context, other_names,
	pronouns, title, avatar_url, social_links, is_primary, is_discoverable,
	created_at, updated_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new identity and returns the persisted record.
// Timestamps are assigned here, never taken from the caller.
func (r *Repo) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	links, err := marshalLinks(identity.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("identity marshal social_links: %w", err)
	}

	now := time.Now().UTC()
	id := identity.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := q.QueryRow(ctx, `
		INSERT INTO identities (id, owner_id, personal_name, context, other_names,
			pronouns, title, avatar_url, social_links, is_primary, is_discoverable,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING `+identityColumns,
		id, identity.OwnerID, identity.PersonalName, string(identity.Context),
		otherNames(identity.OtherNames), identity.Pronouns, identity.Title,
		identity.AvatarURL, links, identity.IsPrimary, identity.IsDiscoverable, now,
	)

	created, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}
	return created, nil
}

// Update applies a partial update to an identity owned by ownerID and bumps
// updated_at. Returns domain.ErrNotFound when no row matches id+owner, which
// deliberately covers both "missing" and "owned by someone else".
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.IdentityUpdateParams) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := builder.Update("identities").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + identityColumns)

	if params.PersonalName != nil {
		update = update.Set("personal_name", *params.PersonalName)
	}
	if params.Context != nil {
		update = update.Set("context", string(*params.Context))
	}
	if params.OtherNames != nil {
		update = update.Set("other_names", otherNames(*params.OtherNames))
	}
	if params.Pronouns != nil {
		update = update.Set("pronouns", *params.Pronouns)
	}
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.AvatarURL != nil {
		update = update.Set("avatar_url", *params.AvatarURL)
	}
	if params.SocialLinks != nil {
		links, err := marshalLinks(*params.SocialLinks)
		if err != nil {
			return nil, fmt.Errorf("identity marshal social_links: %w", err)
		}
		update = update.Set("social_links", links)
	}
	if params.IsPrimary != nil {
		update = update.Set("is_primary", *params.IsPrimary)
	}
	if params.IsDiscoverable != nil {
		update = update.Set("is_discoverable", *params.IsDiscoverable)
	}

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("identity build update: %w", err)
	}

	updated, err := scanIdentity(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}
	return updated, nil
}

// Delete removes an identity owned by ownerID.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM identities WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "identity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearPrimary unsets is_primary on whichever identity currently holds it
// for the owner. A no-op when the owner has no primary. Must be called in
// the same transaction as the write that sets the new primary.
func (r *Repo) ClearPrimary(ctx context.Context, ownerID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE identities SET is_primary = FALSE, updated_at = $2
		 WHERE owner_id = $1 AND is_primary`, ownerID, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "identity", uuid.Nil)
	}
	return nil
}

// MarkPrimary sets is_primary on the target identity and bumps updated_at.
// Returns domain.ErrNotFound when no row matches id+owner.
func (r *Repo) MarkPrimary(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE identities SET is_primary = TRUE, updated_at = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING `+identityColumns,
		id, ownerID, time.Now().UTC(),
	)

	updated, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an identity only when it is owned by ownerID; a miss and a
// cross-owner hit are both domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE id = $1 AND owner_id = $2`,
		id, ownerID)

	identity, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}
	return identity, nil
}

// List returns the owner's identities, primary first, then newest first.
// A non-nil context narrows the result to that context.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, ictx *domain.IdentityContext) ([]*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.Select(identityColumns).
		From("identities").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("is_primary DESC", "created_at DESC")
	if ictx != nil {
		query = query.Where(sq.Eq{"context": string(*ictx)})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("identity build list: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "identity", uuid.Nil)
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// GetPrimary returns the owner's primary identity, or domain.ErrNotFound
// when none is marked.
func (r *Repo) GetPrimary(ctx context.Context, ownerID uuid.UUID) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE owner_id = $1 AND is_primary`,
		ownerID)

	identity, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", uuid.Nil)
	}
	return identity, nil
}

// CountByOwner returns how many identities the owner currently has.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM identities WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "identity", uuid.Nil)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Discovery (cross-owner, discoverability-gated)
// ---------------------------------------------------------------------------

// SearchDiscoverable returns discoverable identities in the given context,
// newest first, capped at limit. query, when non-nil, is matched
// case-insensitively against personal_name, title and other_names. Only rows
// with is_discoverable = TRUE are ever considered; there is intentionally no
// variant of this query without that predicate.
func (r *Repo) SearchDiscoverable(ctx context.Context, ictx domain.IdentityContext, query *string, limit int) ([]*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	filter := searchFilter{context: ictx, query: query, limit: limit}
	sqlStr, args, err := filter.toQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("identity build search: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "identity", uuid.Nil)
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// GetDiscoverableByID returns an identity by id only when it is
// discoverable; a private identity reports domain.ErrNotFound exactly like
// a missing one.
func (r *Repo) GetDiscoverableByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE id = $1 AND is_discoverable`,
		id)

	identity, err := scanIdentity(row)
	if err != nil {
		return nil, postgres.MapError(err, "identity", id)
	}
	return identity, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var (
		identity domain.Identity
		ctxStr   string
		names    []string
		links    []byte
	)

	err := row.Scan(
		&identity.ID, &identity.OwnerID, &identity.PersonalName, &ctxStr, &names,
		&identity.Pronouns, &identity.Title, &identity.AvatarURL, &links,
		&identity.IsPrimary, &identity.IsDiscoverable,
		&identity.CreatedAt, &identity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	identity.Context = domain.IdentityContext(ctxStr)
	identity.OtherNames = names
	if len(links) > 0 {
		if err := json.Unmarshal(links, &identity.SocialLinks); err != nil {
			return nil, fmt.Errorf("identity %s unmarshal social_links: %w", identity.ID, err)
		}
	}
	if identity.SocialLinks == nil {
		identity.SocialLinks = map[string]string{}
	}
	if identity.OtherNames == nil {
		identity.OtherNames = []string{}
	}

	return &identity, nil
}

func scanIdentities(rows pgx.Rows) ([]*domain.Identity, error) {
	identities := make([]*domain.Identity, 0)
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return identities, nil
}

func marshalLinks(links map[string]string) ([]byte, error) {
	if links == nil {
		links = map[string]string{}
	}
	return json.Marshal(links)
}

// otherNames normalizes a nil slice to an empty one so the column stays
// NOT NULL.
func otherNames(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
