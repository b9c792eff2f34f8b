package search

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

var _ discoveryRepo = &discoveryRepoMock{}
var _ auditLogger = &auditLoggerMock{}

type discoveryRepoMock struct {
	SearchDiscoverableFunc  func(ctx context.Context, ictx domain.IdentityContext, query *string, limit int) ([]*domain.Identity, error)
	GetDiscoverableByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Identity, error)

	calls struct {
		SearchDiscoverable []struct {
			Ictx  domain.IdentityContext
			Query *string
			Limit int
		}
		GetDiscoverableByID []struct {
			ID uuid.UUID
		}
	}
	lockSearchDiscoverable  sync.RWMutex
	lockGetDiscoverableByID sync.RWMutex
}

func (mock *discoveryRepoMock) SearchDiscoverable(ctx context.Context, ictx domain.IdentityContext, query *string, limit int) ([]*domain.Identity, error) {
	if mock.SearchDiscoverableFunc == nil {
		panic("discoveryRepoMock.SearchDiscoverableFunc: method is nil but discoveryRepo.SearchDiscoverable was just called")
	}
	callInfo := struct {
		Ictx  domain.IdentityContext
		Query *string
		Limit int
	}{Ictx: ictx, Query: query, Limit: limit}
	mock.lockSearchDiscoverable.Lock()
	mock.calls.SearchDiscoverable = append(mock.calls.SearchDiscoverable, callInfo)
	mock.lockSearchDiscoverable.Unlock()
	return mock.SearchDiscoverableFunc(ctx, ictx, query, limit)
}

func (mock *discoveryRepoMock) SearchDiscoverableCalls() []struct {
	Ictx  domain.IdentityContext
	Query *string
	Limit int
} {
	mock.lockSearchDiscoverable.RLock()
	calls := mock.calls.SearchDiscoverable
	mock.lockSearchDiscoverable.RUnlock()
	return calls
}

func (mock *discoveryRepoMock) GetDiscoverableByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	if mock.GetDiscoverableByIDFunc == nil {
		panic("discoveryRepoMock.GetDiscoverableByIDFunc: method is nil but discoveryRepo.GetDiscoverableByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetDiscoverableByID.Lock()
	mock.calls.GetDiscoverableByID = append(mock.calls.GetDiscoverableByID, callInfo)
	mock.lockGetDiscoverableByID.Unlock()
	return mock.GetDiscoverableByIDFunc(ctx, id)
}

func (mock *discoveryRepoMock) GetDiscoverableByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetDiscoverableByID.RLock()
	calls := mock.calls.GetDiscoverableByID
	mock.lockGetDiscoverableByID.RUnlock()
	return calls
}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Record domain.AuditRecord
	}{Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
