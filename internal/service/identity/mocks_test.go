package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

var _ identityRepo = &identityRepoMock{}
var _ auditLogger = &auditLoggerMock{}
var _ txManager = &txManagerMock{}

type identityRepoMock struct {
	CreateFunc       func(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	GetByIDFunc      func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error)
	UpdateFunc       func(ctx context.Context, ownerID, id uuid.UUID, params domain.IdentityUpdateParams) (*domain.Identity, error)
	DeleteFunc       func(ctx context.Context, ownerID, id uuid.UUID) error
	ListFunc         func(ctx context.Context, ownerID uuid.UUID, ictx *domain.IdentityContext) ([]*domain.Identity, error)
	GetPrimaryFunc   func(ctx context.Context, ownerID uuid.UUID) (*domain.Identity, error)
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)
	ClearPrimaryFunc func(ctx context.Context, ownerID uuid.UUID) error
	MarkPrimaryFunc  func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error)

	calls struct {
		Create []struct {
			Identity *domain.Identity
		}
		GetByID []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		Update []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.IdentityUpdateParams
		}
		Delete []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			OwnerID uuid.UUID
			Ictx    *domain.IdentityContext
		}
		GetPrimary []struct {
			OwnerID uuid.UUID
		}
		CountByOwner []struct {
			OwnerID uuid.UUID
		}
		ClearPrimary []struct {
			OwnerID uuid.UUID
		}
		MarkPrimary []struct {
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockList         sync.RWMutex
	lockGetPrimary   sync.RWMutex
	lockCountByOwner sync.RWMutex
	lockClearPrimary sync.RWMutex
	lockMarkPrimary  sync.RWMutex
}

func (mock *identityRepoMock) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if mock.CreateFunc == nil {
		panic("identityRepoMock.CreateFunc: method is nil but identityRepo.Create was just called")
	}
	callInfo := struct {
		Identity *domain.Identity
	}{Identity: identity}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, identity)
}

func (mock *identityRepoMock) CreateCalls() []struct {
	Identity *domain.Identity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error) {
	if mock.GetByIDFunc == nil {
		panic("identityRepoMock.GetByIDFunc: method is nil but identityRepo.GetByID was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *identityRepoMock) GetByIDCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *identityRepoMock) Update(ctx context.Context, ownerID, id uuid.UUID, params domain.IdentityUpdateParams) (*domain.Identity, error) {
	if mock.UpdateFunc == nil {
		panic("identityRepoMock.UpdateFunc: method is nil but identityRepo.Update was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.IdentityUpdateParams
	}{OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *identityRepoMock) UpdateCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.IdentityUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *identityRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("identityRepoMock.DeleteFunc: method is nil but identityRepo.Delete was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *identityRepoMock) DeleteCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *identityRepoMock) List(ctx context.Context, ownerID uuid.UUID, ictx *domain.IdentityContext) ([]*domain.Identity, error) {
	if mock.ListFunc == nil {
		panic("identityRepoMock.ListFunc: method is nil but identityRepo.List was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Ictx    *domain.IdentityContext
	}{OwnerID: ownerID, Ictx: ictx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, ictx)
}

func (mock *identityRepoMock) ListCalls() []struct {
	OwnerID uuid.UUID
	Ictx    *domain.IdentityContext
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetPrimary(ctx context.Context, ownerID uuid.UUID) (*domain.Identity, error) {
	if mock.GetPrimaryFunc == nil {
		panic("identityRepoMock.GetPrimaryFunc: method is nil but identityRepo.GetPrimary was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
	}{OwnerID: ownerID}
	mock.lockGetPrimary.Lock()
	mock.calls.GetPrimary = append(mock.calls.GetPrimary, callInfo)
	mock.lockGetPrimary.Unlock()
	return mock.GetPrimaryFunc(ctx, ownerID)
}

func (mock *identityRepoMock) GetPrimaryCalls() []struct {
	OwnerID uuid.UUID
} {
	mock.lockGetPrimary.RLock()
	calls := mock.calls.GetPrimary
	mock.lockGetPrimary.RUnlock()
	return calls
}

func (mock *identityRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("identityRepoMock.CountByOwnerFunc: method is nil but identityRepo.CountByOwner was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
	}{OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

func (mock *identityRepoMock) CountByOwnerCalls() []struct {
	OwnerID uuid.UUID
} {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

func (mock *identityRepoMock) ClearPrimary(ctx context.Context, ownerID uuid.UUID) error {
	if mock.ClearPrimaryFunc == nil {
		panic("identityRepoMock.ClearPrimaryFunc: method is nil but identityRepo.ClearPrimary was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
	}{OwnerID: ownerID}
	mock.lockClearPrimary.Lock()
	mock.calls.ClearPrimary = append(mock.calls.ClearPrimary, callInfo)
	mock.lockClearPrimary.Unlock()
	return mock.ClearPrimaryFunc(ctx, ownerID)
}

func (mock *identityRepoMock) ClearPrimaryCalls() []struct {
	OwnerID uuid.UUID
} {
	mock.lockClearPrimary.RLock()
	calls := mock.calls.ClearPrimary
	mock.lockClearPrimary.RUnlock()
	return calls
}

func (mock *identityRepoMock) MarkPrimary(ctx context.Context, ownerID, id uuid.UUID) (*domain.Identity, error) {
	if mock.MarkPrimaryFunc == nil {
		panic("identityRepoMock.MarkPrimaryFunc: method is nil but identityRepo.MarkPrimary was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{OwnerID: ownerID, ID: id}
	mock.lockMarkPrimary.Lock()
	mock.calls.MarkPrimary = append(mock.calls.MarkPrimary, callInfo)
	mock.lockMarkPrimary.Unlock()
	return mock.MarkPrimaryFunc(ctx, ownerID, id)
}

func (mock *identityRepoMock) MarkPrimaryCalls() []struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockMarkPrimary.RLock()
	calls := mock.calls.MarkPrimary
	mock.lockMarkPrimary.RUnlock()
	return calls
}

type auditLoggerMock struct {
	LogFunc          func(ctx context.Context, record domain.AuditRecord) error
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.AuditRecord, error)
	ListByEntityFunc func(ctx context.Context, entity string, entityID uuid.UUID) ([]*domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Record domain.AuditRecord
		}
		ListByOwner []struct {
			OwnerID uuid.UUID
			Limit   int
		}
		ListByEntity []struct {
			Entity   string
			EntityID uuid.UUID
		}
	}
	lockLog          sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockListByEntity sync.RWMutex
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

func (mock *auditLoggerMock) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.AuditRecord, error) {
	if mock.ListByOwnerFunc == nil {
		panic("auditLoggerMock.ListByOwnerFunc: method is nil but auditLogger.ListByOwner was just called")
	}
	callInfo := struct {
		OwnerID uuid.UUID
		Limit   int
	}{OwnerID: ownerID, Limit: limit}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, limit)
}

func (mock *auditLoggerMock) ListByOwnerCalls() []struct {
	OwnerID uuid.UUID
	Limit   int
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *auditLoggerMock) ListByEntity(ctx context.Context, entity string, entityID uuid.UUID) ([]*domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditLoggerMock.ListByEntityFunc: method is nil but auditLogger.ListByEntity was just called")
	}
	callInfo := struct {
		Entity   string
		EntityID uuid.UUID
	}{Entity: entity, EntityID: entityID}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entity, entityID)
}

func (mock *auditLoggerMock) ListByEntityCalls() []struct {
	Entity   string
	EntityID uuid.UUID
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
