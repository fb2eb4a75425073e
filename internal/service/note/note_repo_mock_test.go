package note

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc func(ctx context.Context, p domain.NoteParams) (*domain.Note, error)
	DeleteFunc func(ctx context.Context, id int64) error
	ListFunc   func(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)

	calls struct {
		Create []struct {
			P domain.NoteParams
		}
		Delete []struct {
			ID int64
		}
		List []struct {
			F domain.NoteFilter
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *noteRepoMock) Create(ctx context.Context, p domain.NoteParams) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		P domain.NoteParams
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	P domain.NoteParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteRepoMock) List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	if mock.ListFunc == nil {
		panic("noteRepoMock.ListFunc: method is nil but noteRepo.List was just called")
	}
	callInfo := struct {
		F domain.NoteFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *noteRepoMock) ListCalls() []struct {
	F domain.NoteFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
