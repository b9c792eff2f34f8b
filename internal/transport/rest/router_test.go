package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/personas-backend/internal/domain"
	"github.com/heartmarshall/personas-backend/internal/service/search"
)

func testRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	identitySvc := &identityServiceMock{
		GetIdentityFunc: func(context.Context, uuid.UUID) (*domain.Identity, error) {
			return testIdentity(), nil
		},
		GetPrimaryIdentityFunc: func(context.Context) (*domain.Identity, error) {
			return testIdentity(), nil
		},
		ListIdentitiesFunc: func(context.Context, *domain.IdentityContext) ([]*domain.Identity, error) {
			return nil, nil
		},
		ListAuditLogFunc: func(context.Context, int) ([]*domain.AuditRecord, error) {
			return nil, nil
		},
		GetIdentityHistoryFunc: func(context.Context, uuid.UUID) ([]*domain.AuditRecord, error) {
			return nil, nil
		},
	}
	searchSvc := &searchServiceMock{
		SearchFunc: func(context.Context, search.SearchInput) (*search.Result, error) {
			return &search.Result{}, nil
		},
	}

	return NewRouter(Handlers{
		Identity: NewIdentityHandler(identitySvc, testLogger()),
		Search:   NewSearchHandler(searchSvc, testLogger()),
		Auth:     NewAuthHandler(&authServiceMock{}, testLogger()),
		Health:   NewHealthHandler(&dbPingerMock{}, "test"),
	}, nil)
}

func TestRouter_PrimaryRouteNotShadowedByID(t *testing.T) {
	t.Parallel()

	mux := testRouter(t)

	// /identities/primary must hit the dedicated route, not the {id}
	// pattern with "primary" as a non-UUID id.
	req := httptest.NewRequest(http.MethodGet, "/identities/primary", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AuditRoutes(t *testing.T) {
	t.Parallel()

	mux := testRouter(t)

	for _, path := range []string{"/audit-log", "/identities/" + uuid.NewString() + "/history"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	mux := testRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/public/identities/search", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_HealthRoutes(t *testing.T) {
	t.Parallel()

	mux := testRouter(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestRouter_PublicLimitApplied(t *testing.T) {
	t.Parallel()

	blocked := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}

	searchSvc := &searchServiceMock{
		SearchFunc: func(context.Context, search.SearchInput) (*search.Result, error) {
			t.Error("service should not be reached when the limiter blocks")
			return nil, nil
		},
	}

	mux := NewRouter(Handlers{
		Identity: NewIdentityHandler(&identityServiceMock{
			ListIdentitiesFunc: func(context.Context, *domain.IdentityContext) ([]*domain.Identity, error) {
				return nil, nil
			},
		}, testLogger()),
		Search: NewSearchHandler(searchSvc, testLogger()),
		Auth:   NewAuthHandler(&authServiceMock{}, testLogger()),
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
	}, blocked)

	req := httptest.NewRequest(http.MethodGet, "/public/identities/search?context=work", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Owner routes stay unlimited.
	req = httptest.NewRequest(http.MethodGet, "/identities", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
