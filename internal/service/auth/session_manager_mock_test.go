package auth

import (
	"sync"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	IssueFunc    func(userID int64) (string, error)
	ValidateFunc func(token string) (int64, error)

	calls struct {
		Issue []struct {
			UserID int64
		}
		Validate []struct {
			Token string
		}
	}
	lockIssue    sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *sessionManagerMock) Issue(userID int64) (string, error) {
	if mock.IssueFunc == nil {
		panic("sessionManagerMock.IssueFunc: method is nil but sessionManager.Issue was just called")
	}
	callInfo := struct {
		UserID int64
	}{UserID: userID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID)
}

func (mock *sessionManagerMock) IssueCalls() []struct {
	UserID int64
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Validate(token string) (int64, error) {
	if mock.ValidateFunc == nil {
		panic("sessionManagerMock.ValidateFunc: method is nil but sessionManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *sessionManagerMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
