package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with a unique email.
// Returns a filled domain.Account.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	account := domain.Account{
		ID:          uuid.New(),
		Email:       "owner-" + suffix + "@example.com",
		DisplayName: "Owner " + suffix,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, email, display_name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		account.ID, account.Email, account.DisplayName, account.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert account: %v", err)
	}

	return account
}

// SeedOpts tweaks a seeded identity. Zero value seeds a plain non-primary,
// non-discoverable identity in the social context.
type SeedOpts struct {
	Context      domain.IdentityContext
	Primary      bool
	Discoverable bool
	PersonalName string
	Title        *string
	OtherNames   []string
}

// SeedIdentity creates an identity for ownerID.
// Returns a filled domain.Identity.
func SeedIdentity(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts SeedOpts) domain.Identity {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	if opts.Context == "" {
		opts.Context = domain.ContextSocial
	}
	if opts.PersonalName == "" {
		opts.PersonalName = "Persona " + suffix
	}
	if opts.OtherNames == nil {
		opts.OtherNames = []string{}
	}

	links := map[string]string{"website": "https://example.com/" + suffix}
	linksJSON, err := json.Marshal(links)
	if err != nil {
		t.Fatalf("testhelper: SeedIdentity marshal links: %v", err)
	}

	identity := domain.Identity{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		PersonalName:   opts.PersonalName,
		Context:        opts.Context,
		OtherNames:     opts.OtherNames,
		Title:          opts.Title,
		SocialLinks:    links,
		IsPrimary:      opts.Primary,
		IsDiscoverable: opts.Discoverable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO identities (id, owner_id, personal_name, context, other_names,
			pronouns, title, avatar_url, social_links, is_primary, is_discoverable,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		identity.ID, identity.OwnerID, identity.PersonalName, string(identity.Context),
		identity.OtherNames, identity.Pronouns, identity.Title, identity.AvatarURL,
		linksJSON, identity.IsPrimary, identity.IsDiscoverable,
		identity.CreatedAt, identity.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdentity insert identity: %v", err)
	}

	return identity
}
