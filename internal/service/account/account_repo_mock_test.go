package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc  func(ctx context.Context, p domain.AccountParams) (*domain.Account, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Account, error)
	ListFunc    func(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.AccountParams) (*domain.Account, error)

	calls struct {
		Create []struct {
			P domain.AccountParams
		}
		Delete []struct {
			ID int64
		}
		GetByID []struct {
			ID int64
		}
		List []struct {
			F domain.AccountFilter
		}
		Update []struct {
			ID int64
			P  domain.AccountParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, p domain.AccountParams) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		P domain.AccountParams
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	P domain.AccountParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("accountRepoMock.DeleteFunc: method is nil but accountRepo.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *accountRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error) {
	if mock.ListFunc == nil {
		panic("accountRepoMock.ListFunc: method is nil but accountRepo.List was just called")
	}
	callInfo := struct {
		F domain.AccountFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *accountRepoMock) ListCalls() []struct {
	F domain.AccountFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountRepoMock) Update(ctx context.Context, id int64, p domain.AccountParams) (*domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	callInfo := struct {
		ID int64
		P  domain.AccountParams
	}{ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *accountRepoMock) UpdateCalls() []struct {
	ID int64
	P  domain.AccountParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
