// Command seeder populates the database with demo accounts and identities
// for local development. It is idempotent: accounts are keyed by email and
// re-running skips ones that already exist.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/personas-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/personas-backend/internal/adapter/postgres/account"
	identityrepo "github.com/heartmarshall/personas-backend/internal/adapter/postgres/identity"
	"github.com/heartmarshall/personas-backend/internal/app"
	"github.com/heartmarshall/personas-backend/internal/config"
	"github.com/heartmarshall/personas-backend/internal/domain"
)

const demoPassword = "demo-password-1"

type demoAccount struct {
	email       string
	displayName string
	identities  []domain.Identity
}

func demoData() []demoAccount {
	pronouns := "she/her"
	title := "Staff Engineer"
	handle := "nightowl"
	return []demoAccount{
		{
			email:       "ada@example.com",
			displayName: "Ada",
			identities: []domain.Identity{
				{
					PersonalName:   "Augusta Ada King",
					Context:        domain.ContextLegal,
					IsPrimary:      true,
					IsDiscoverable: false,
				},
				{
					PersonalName:   "Ada Lovelace",
					Context:        domain.ContextWork,
					Pronouns:       &pronouns,
					Title:          &title,
					SocialLinks:    map[string]string{"website": "https://example.com/ada"},
					IsDiscoverable: true,
				},
			},
		},
		{
			email:       "grace@example.com",
			displayName: "Grace",
			identities: []domain.Identity{
				{
					PersonalName:   "Grace Hopper",
					Context:        domain.ContextWork,
					OtherNames:     []string{"Amazing Grace"},
					IsPrimary:      true,
					IsDiscoverable: true,
				},
				{
					PersonalName:   "nightowl",
					Context:        domain.ContextGaming,
					Title:          &handle,
					IsDiscoverable: true,
				},
			},
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	accounts := accountrepo.New(pool)
	identities := identityrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash demo password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, demo := range demoData() {
		if _, err := accounts.GetByEmail(ctx, demo.email); err == nil {
			logger.Info("account exists, skipping", slog.String("email", demo.email))
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("check account", slog.String("email", demo.email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		account, err := accounts.Create(ctx, &domain.Account{
			Email:       demo.email,
			DisplayName: demo.displayName,
		})
		if err != nil {
			logger.Error("create account", slog.String("email", demo.email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		if err := accounts.SetCredential(ctx, account.ID, string(hash)); err != nil {
			logger.Error("set credential", slog.String("email", demo.email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		for _, ident := range demo.identities {
			ident.OwnerID = account.ID
			if _, err := identities.Create(ctx, &ident); err != nil {
				logger.Error("create identity",
					slog.String("email", demo.email),
					slog.String("name", ident.PersonalName),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
		}

		logger.Info("seeded account",
			slog.String("email", demo.email),
			slog.Int("identities", len(demo.identities)),
		)
	}

	logger.Info("done", slog.String("password", demoPassword))
}
