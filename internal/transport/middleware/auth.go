package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/personas-backend/internal/format"
	"github.com/heartmarshall/personas-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}

// Auth returns middleware that resolves the bearer token into the owning
// account and stores it in the request context. Requests without a token
// pass through anonymous; handlers decide whether that is acceptable.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			accountID, err := validator.ValidateAccessToken(token)
			if err != nil {
				f := format.Negotiate(r.Header.Get("Accept"))
				w.Header().Set("Content-Type", format.ContentType(f))
				w.WriteHeader(http.StatusUnauthorized)
				w.Write(format.MarshalError(f, "Unauthorized"))
				return
			}
			ctx := ctxutil.WithOwnerID(r.Context(), accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
