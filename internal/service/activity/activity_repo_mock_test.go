package activity

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc  func(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Activity, error)
	ListFunc    func(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.ActivityParams) (*domain.Activity, error)

	calls struct {
		Create []struct {
			P domain.ActivityParams
		}
		Delete []struct {
			ID int64
		}
		GetByID []struct {
			ID int64
		}
		List []struct {
			F domain.ActivityFilter
		}
		Update []struct {
			ID int64
			P  domain.ActivityParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, p domain.ActivityParams) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		P domain.ActivityParams
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	P domain.ActivityParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("activityRepoMock.DeleteFunc: method is nil but activityRepo.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *activityRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *activityRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *activityRepoMock) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	callInfo := struct {
		F domain.ActivityFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *activityRepoMock) ListCalls() []struct {
	F domain.ActivityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *activityRepoMock) Update(ctx context.Context, id int64, p domain.ActivityParams) (*domain.Activity, error) {
	if mock.UpdateFunc == nil {
		panic("activityRepoMock.UpdateFunc: method is nil but activityRepo.Update was just called")
	}
	callInfo := struct {
		ID int64
		P  domain.ActivityParams
	}{ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *activityRepoMock) UpdateCalls() []struct {
	ID int64
	P  domain.ActivityParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
