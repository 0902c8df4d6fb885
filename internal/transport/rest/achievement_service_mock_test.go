package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/achievement"
)

var _ achievementService = &achievementServiceMock{}

type achievementServiceMock struct {
	ListFunc  func(ctx context.Context) ([]achievement.Status, error)
	CheckFunc func(ctx context.Context) ([]domain.Achievement, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Check []struct {
			Ctx context.Context
		}
	}
	lockList  sync.RWMutex
	lockCheck sync.RWMutex
}

func (mock *achievementServiceMock) List(ctx context.Context) ([]achievement.Status, error) {
	if mock.ListFunc == nil {
		panic("achievementServiceMock.ListFunc: method is nil but achievementService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *achievementServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *achievementServiceMock) Check(ctx context.Context) ([]domain.Achievement, error) {
	if mock.CheckFunc == nil {
		panic("achievementServiceMock.CheckFunc: method is nil but achievementService.Check was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx)
}

func (mock *achievementServiceMock) CheckCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCheck.RLock()
	calls = mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
