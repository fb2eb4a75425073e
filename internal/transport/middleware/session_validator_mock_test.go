package middleware

import (
	"context"
	"sync"
)

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
