package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/account"
	"github.com/heartmarshall/localcrm/internal/service/auth"
	"github.com/heartmarshall/localcrm/internal/service/dashboard"
	"github.com/heartmarshall/localcrm/internal/service/deal"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	CreateFunc func(ctx context.Context, input account.AccountInput) (*domain.Account, error)
	DeleteFunc func(ctx context.Context, id int64) error
	GetFunc    func(ctx context.Context, id int64) (*domain.Account, error)
	ListFunc   func(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error)
	UpdateFunc func(ctx context.Context, id int64, input account.AccountInput) (*domain.Account, error)

	calls struct {
		Create []struct {
			Input account.AccountInput
		}
		Delete []struct {
			ID int64
		}
		Get []struct {
			ID int64
		}
		List []struct {
			F domain.AccountFilter
		}
		Update []struct {
			ID    int64
			Input account.AccountInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *accountServiceMock) Create(ctx context.Context, input account.AccountInput) (*domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountServiceMock.CreateFunc: method is nil but accountService.Create was just called")
	}
	callInfo := struct {
		Input account.AccountInput
	}{Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *accountServiceMock) CreateCalls() []struct {
	Input account.AccountInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("accountServiceMock.DeleteFunc: method is nil but accountService.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *accountServiceMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *accountServiceMock) Get(ctx context.Context, id int64) (*domain.Account, error) {
	if mock.GetFunc == nil {
		panic("accountServiceMock.GetFunc: method is nil but accountService.Get was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *accountServiceMock) GetCalls() []struct {
	ID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *accountServiceMock) List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error) {
	if mock.ListFunc == nil {
		panic("accountServiceMock.ListFunc: method is nil but accountService.List was just called")
	}
	callInfo := struct {
		F domain.AccountFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *accountServiceMock) ListCalls() []struct {
	F domain.AccountFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountServiceMock) Update(ctx context.Context, id int64, input account.AccountInput) (*domain.Account, error) {
	if mock.UpdateFunc == nil {
		panic("accountServiceMock.UpdateFunc: method is nil but accountService.Update was just called")
	}
	callInfo := struct {
		ID    int64
		Input account.AccountInput
	}{ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *accountServiceMock) UpdateCalls() []struct {
	ID    int64
	Input account.AccountInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ dealService = &dealServiceMock{}

type dealServiceMock struct {
	CreateFunc    func(ctx context.Context, input deal.DealInput) (*domain.Deal, error)
	DeleteFunc    func(ctx context.Context, id int64) error
	GetFunc       func(ctx context.Context, id int64) (*domain.Deal, error)
	ListFunc      func(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error)
	MoveStageFunc func(ctx context.Context, id int64, input deal.StageMoveInput) (*domain.Deal, error)
	UpdateFunc    func(ctx context.Context, id int64, input deal.DealInput) (*domain.Deal, error)

	calls struct {
		Create []struct {
			Input deal.DealInput
		}
		Delete []struct {
			ID int64
		}
		Get []struct {
			ID int64
		}
		List []struct {
			F domain.DealFilter
		}
		MoveStage []struct {
			ID    int64
			Input deal.StageMoveInput
		}
		Update []struct {
			ID    int64
			Input deal.DealInput
		}
	}
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockGet       sync.RWMutex
	lockList      sync.RWMutex
	lockMoveStage sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *dealServiceMock) Create(ctx context.Context, input deal.DealInput) (*domain.Deal, error) {
	if mock.CreateFunc == nil {
		panic("dealServiceMock.CreateFunc: method is nil but dealService.Create was just called")
	}
	callInfo := struct {
		Input deal.DealInput
	}{Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *dealServiceMock) CreateCalls() []struct {
	Input deal.DealInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dealServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("dealServiceMock.DeleteFunc: method is nil but dealService.Delete was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dealServiceMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dealServiceMock) Get(ctx context.Context, id int64) (*domain.Deal, error) {
	if mock.GetFunc == nil {
		panic("dealServiceMock.GetFunc: method is nil but dealService.Get was just called")
	}
	callInfo := struct {
		ID int64
	}{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *dealServiceMock) GetCalls() []struct {
	ID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *dealServiceMock) List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error) {
	if mock.ListFunc == nil {
		panic("dealServiceMock.ListFunc: method is nil but dealService.List was just called")
	}
	callInfo := struct {
		F domain.DealFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *dealServiceMock) ListCalls() []struct {
	F domain.DealFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dealServiceMock) MoveStage(ctx context.Context, id int64, input deal.StageMoveInput) (*domain.Deal, error) {
	if mock.MoveStageFunc == nil {
		panic("dealServiceMock.MoveStageFunc: method is nil but dealService.MoveStage was just called")
	}
	callInfo := struct {
		ID    int64
		Input deal.StageMoveInput
	}{ID: id, Input: input}
	mock.lockMoveStage.Lock()
	mock.calls.MoveStage = append(mock.calls.MoveStage, callInfo)
	mock.lockMoveStage.Unlock()
	return mock.MoveStageFunc(ctx, id, input)
}

func (mock *dealServiceMock) MoveStageCalls() []struct {
	ID    int64
	Input deal.StageMoveInput
} {
	mock.lockMoveStage.RLock()
	calls := mock.calls.MoveStage
	mock.lockMoveStage.RUnlock()
	return calls
}

func (mock *dealServiceMock) Update(ctx context.Context, id int64, input deal.DealInput) (*domain.Deal, error) {
	if mock.UpdateFunc == nil {
		panic("dealServiceMock.UpdateFunc: method is nil but dealService.Update was just called")
	}
	callInfo := struct {
		ID    int64
		Input deal.DealInput
	}{ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *dealServiceMock) UpdateCalls() []struct {
	ID    int64
	Input deal.DealInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	MeFunc    func(ctx context.Context) (*domain.User, error)

	calls struct {
		Login []struct {
			Input auth.LoginInput
		}
		Me []struct{}
	}
	lockLogin sync.RWMutex
	lockMe    sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Input auth.LoginInput
	}{Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, struct{}{})
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct{} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	SummaryFunc func(ctx context.Context) (*dashboard.Summary, error)

	calls struct {
		Summary []struct{}
	}
	lockSummary sync.RWMutex
}

func (mock *dashboardServiceMock) Summary(ctx context.Context) (*dashboard.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("dashboardServiceMock.SummaryFunc: method is nil but dashboardService.Summary was just called")
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, struct{}{})
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *dashboardServiceMock) SummaryCalls() []struct{} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

var _ sessionValidator = &sessionValidatorMock{}

type sessionValidatorMock struct {
	ValidateSessionFunc func(ctx context.Context, token string) (int64, error)

	calls struct {
		ValidateSession []struct {
			Token string
		}
	}
	lockValidateSession sync.RWMutex
}

func (mock *sessionValidatorMock) ValidateSession(ctx context.Context, token string) (int64, error) {
	if mock.ValidateSessionFunc == nil {
		panic("sessionValidatorMock.ValidateSessionFunc: method is nil but sessionValidator.ValidateSession was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateSession.Lock()
	mock.calls.ValidateSession = append(mock.calls.ValidateSession, callInfo)
	mock.lockValidateSession.Unlock()
	return mock.ValidateSessionFunc(ctx, token)
}

func (mock *sessionValidatorMock) ValidateSessionCalls() []struct {
	Token string
} {
	mock.lockValidateSession.RLock()
	calls := mock.calls.ValidateSession
	mock.lockValidateSession.RUnlock()
	return calls
}
