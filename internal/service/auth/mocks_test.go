package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/personas-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}
var _ jwtManager = &jwtManagerMock{}
var _ txManager = &txManagerMock{}

type accountRepoMock struct {
	CreateFunc        func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.Account, error)
	SetCredentialFunc func(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	GetCredentialFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error)

	calls struct {
		Create []struct {
			Account *domain.Account
		}
		GetByEmail []struct {
			Email string
		}
		SetCredential []struct {
			AccountID    uuid.UUID
			PasswordHash string
		}
		GetCredential []struct {
			AccountID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByEmail    sync.RWMutex
	lockSetCredential sync.RWMutex
	lockGetCredential sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Account *domain.Account
	}{Account: account}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, account)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Account *domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Email string
	}{Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) GetByEmailCalls() []struct {
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) SetCredential(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	if mock.SetCredentialFunc == nil {
		panic("accountRepoMock.SetCredentialFunc: method is nil but accountRepo.SetCredential was just called")
	}
	callInfo := struct {
		AccountID    uuid.UUID
		PasswordHash string
	}{AccountID: accountID, PasswordHash: passwordHash}
	mock.lockSetCredential.Lock()
	mock.calls.SetCredential = append(mock.calls.SetCredential, callInfo)
	mock.lockSetCredential.Unlock()
	return mock.SetCredentialFunc(ctx, accountID, passwordHash)
}

func (mock *accountRepoMock) SetCredentialCalls() []struct {
	AccountID    uuid.UUID
	PasswordHash string
} {
	mock.lockSetCredential.RLock()
	calls := mock.calls.SetCredential
	mock.lockSetCredential.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetCredential(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error) {
	if mock.GetCredentialFunc == nil {
		panic("accountRepoMock.GetCredentialFunc: method is nil but accountRepo.GetCredential was just called")
	}
	callInfo := struct {
		AccountID uuid.UUID
	}{AccountID: accountID}
	mock.lockGetCredential.Lock()
	mock.calls.GetCredential = append(mock.calls.GetCredential, callInfo)
	mock.lockGetCredential.Unlock()
	return mock.GetCredentialFunc(ctx, accountID)
}

func (mock *accountRepoMock) GetCredentialCalls() []struct {
	AccountID uuid.UUID
} {
	mock.lockGetCredential.RLock()
	calls := mock.calls.GetCredential
	mock.lockGetCredential.RUnlock()
	return calls
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(accountID uuid.UUID) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			AccountID uuid.UUID
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(accountID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AccountID uuid.UUID
	}{AccountID: accountID}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(accountID)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AccountID uuid.UUID
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
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
