package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/personas-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/personas-backend/internal/adapter/postgres/account"
	auditrepo "github.com/heartmarshall/personas-backend/internal/adapter/postgres/audit"
	identityrepo "github.com/heartmarshall/personas-backend/internal/adapter/postgres/identity"
	jwtauth "github.com/heartmarshall/personas-backend/internal/auth"
	"github.com/heartmarshall/personas-backend/internal/config"
	authsvc "github.com/heartmarshall/personas-backend/internal/service/auth"
	identitysvc "github.com/heartmarshall/personas-backend/internal/service/identity"
	searchsvc "github.com/heartmarshall/personas-backend/internal/service/search"
	"github.com/heartmarshall/personas-backend/internal/transport/middleware"
	"github.com/heartmarshall/personas-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage and service layers, and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	identities := identityrepo.New(pool)
	accounts := accountrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	identityService := identitysvc.NewService(logger, identities, audit, tx, cfg.Identity.MaxPerOwner)
	searchService := searchsvc.NewService(logger, identities, audit, cfg.Identity.SearchDefaultLimit, cfg.Identity.SearchMaxLimit)
	authService := authsvc.NewService(logger, accounts, jwt, tx)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Identity: rest.NewIdentityHandler(identityService, logger),
		Search:   rest.NewSearchHandler(searchService, logger),
		Auth:     rest.NewAuthHandler(authService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}, limiter.Limit(cfg.Server.PublicRateLimit))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(mux)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
