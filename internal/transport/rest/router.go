package rest

import (
	"net/http"

	"github.com/heartmarshall/personas-backend/internal/transport/middleware"
)

// Handlers bundles the endpoint handlers the router wires up.
type Handlers struct {
	Identity *IdentityHandler
	Search   *SearchHandler
	Auth     *AuthHandler
	Health   *HealthHandler
}

// NewRouter registers all routes on a ServeMux. publicLimit, when non-nil,
// wraps the discovery endpoints, which accept the heaviest anonymous
// traffic; the rest of the routes are not rate limited.
func NewRouter(h Handlers, publicLimit middleware.Middleware) *http.ServeMux {
	if publicLimit == nil {
		publicLimit = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("POST /identities", h.Identity.Create)
	mux.HandleFunc("GET /identities", h.Identity.List)
	mux.HandleFunc("GET /identities/primary", h.Identity.GetPrimary)
	mux.HandleFunc("GET /identities/{id}", h.Identity.Get)
	mux.HandleFunc("PUT /identities/{id}", h.Identity.Update)
	mux.HandleFunc("PATCH /identities/{id}", h.Identity.Update)
	mux.HandleFunc("DELETE /identities/{id}", h.Identity.Delete)
	mux.HandleFunc("POST /identities/{id}/set-primary", h.Identity.SetPrimary)
	mux.HandleFunc("GET /identities/{id}/history", h.Identity.History)

	mux.HandleFunc("GET /audit-log", h.Identity.AuditLog)

	mux.Handle("GET /public/identities/search", publicLimit(http.HandlerFunc(h.Search.Search)))
	mux.Handle("GET /public/identities/{id}", publicLimit(http.HandlerFunc(h.Search.GetPublic)))

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	return mux
}
