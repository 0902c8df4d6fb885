package xp

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc     func(ctx context.Context, h *domain.XPHistory) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.XPHistory, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			H   *domain.XPHistory
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockAppend     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, h *domain.XPHistory) error {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   *domain.XPHistory
	}{
		Ctx: ctx,
		H:   h,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, h)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx context.Context
	H   *domain.XPHistory
} {
	var calls []struct {
		Ctx context.Context
		H   *domain.XPHistory
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.XPHistory, error) {
	if mock.ListByUserFunc == nil {
		panic("historyRepoMock.ListByUserFunc: method is nil but historyRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *historyRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
