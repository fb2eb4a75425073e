package deal

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
)

var _ dealRepo = &dealRepoMock{}

type dealRepoMock struct {
	CreateFunc     func(ctx context.Context, p domain.DealParams) (*domain.Deal, error)
	DeleteFunc     func(ctx context.Context, id int64) error
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Deal, error)
	ListFunc       func(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error)
	PatchStageFunc func(ctx context.Context, id int64, stageID int64) (*domain.Deal, error)
	UpdateFunc     func(ctx context.Context, id int64, p domain.DealParams) (*domain.Deal, error)

	calls struct {
		Create []struct {
			P domain.DealParams
		}
		Delete []struct {
			ID int64
		}
		GetByID []struct {
			ID int64
		}
		List []struct {
			F domain.DealFilter
		}
		PatchStage []struct {
			ID      int64
			StageID int64
		}
		Update []struct {
			ID int64
			P  domain.DealParams
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockPatchStage sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *dealRepoMock) Create(ctx context.Context, p domain.DealParams) (*domain.Deal, error) {
	if mock.CreateFunc == nil {
		panic("dealRepoMock.CreateFunc: method is nil but dealRepo.Create was just called")
	}
	callInfo := struct {
		P domain.DealParams
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *dealRepoMock) CreateCalls() []struct {
	P domain.DealParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dealRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("dealRepoMock.DeleteFunc: method is nil but dealRepo.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dealRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dealRepoMock) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	if mock.GetByIDFunc == nil {
		panic("dealRepoMock.GetByIDFunc: method is nil but dealRepo.GetByID was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dealRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dealRepoMock) List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error) {
	if mock.ListFunc == nil {
		panic("dealRepoMock.ListFunc: method is nil but dealRepo.List was just called")
	}
	callInfo := struct {
		F domain.DealFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *dealRepoMock) ListCalls() []struct {
	F domain.DealFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dealRepoMock) PatchStage(ctx context.Context, id int64, stageID int64) (*domain.Deal, error) {
	if mock.PatchStageFunc == nil {
		panic("dealRepoMock.PatchStageFunc: method is nil but dealRepo.PatchStage was just called")
	}
	callInfo := struct {
		ID      int64
		StageID int64
	}{ID: id, StageID: stageID}
	mock.lockPatchStage.Lock()
	mock.calls.PatchStage = append(mock.calls.PatchStage, callInfo)
	mock.lockPatchStage.Unlock()
	return mock.PatchStageFunc(ctx, id, stageID)
}

func (mock *dealRepoMock) PatchStageCalls() []struct {
	ID      int64
	StageID int64
} {
	mock.lockPatchStage.RLock()
	calls := mock.calls.PatchStage
	mock.lockPatchStage.RUnlock()
	return calls
}

func (mock *dealRepoMock) Update(ctx context.Context, id int64, p domain.DealParams) (*domain.Deal, error) {
	if mock.UpdateFunc == nil {
		panic("dealRepoMock.UpdateFunc: method is nil but dealRepo.Update was just called")
	}
	callInfo := struct {
		ID int64
		P  domain.DealParams
	}{ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *dealRepoMock) UpdateCalls() []struct {
	ID int64
	P  domain.DealParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
