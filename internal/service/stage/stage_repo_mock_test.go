package stage

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
)

var _ stageRepo = &stageRepoMock{}

type stageRepoMock struct {
	CreateFunc  func(ctx context.Context, p domain.StageParams) (*domain.Stage, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Stage, error)
	ListFunc    func(ctx context.Context) ([]domain.Stage, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.StageParams) (*domain.Stage, error)

	calls struct {
		Create []struct {
			P domain.StageParams
		}
		Delete []struct {
			ID int64
		}
		GetByID []struct {
			ID int64
		}
		List []struct{}
		Update []struct {
			ID int64
			P  domain.StageParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *stageRepoMock) Create(ctx context.Context, p domain.StageParams) (*domain.Stage, error) {
	if mock.CreateFunc == nil {
		panic("stageRepoMock.CreateFunc: method is nil but stageRepo.Create was just called")
	}
	callInfo := struct {
		P domain.StageParams
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *stageRepoMock) CreateCalls() []struct {
	P domain.StageParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *stageRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("stageRepoMock.DeleteFunc: method is nil but stageRepo.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *stageRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *stageRepoMock) GetByID(ctx context.Context, id int64) (*domain.Stage, error) {
	if mock.GetByIDFunc == nil {
		panic("stageRepoMock.GetByIDFunc: method is nil but stageRepo.GetByID was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *stageRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *stageRepoMock) List(ctx context.Context) ([]domain.Stage, error) {
	if mock.ListFunc == nil {
		panic("stageRepoMock.ListFunc: method is nil but stageRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *stageRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *stageRepoMock) Update(ctx context.Context, id int64, p domain.StageParams) (*domain.Stage, error) {
	if mock.UpdateFunc == nil {
		panic("stageRepoMock.UpdateFunc: method is nil but stageRepo.Update was just called")
	}
	callInfo := struct {
		ID int64
		P  domain.StageParams
	}{ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *stageRepoMock) UpdateCalls() []struct {
	ID int64
	P  domain.StageParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
