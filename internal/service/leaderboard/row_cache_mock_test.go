package leaderboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ rowCache = &rowCacheMock{}

type rowCacheMock struct {
	GetFunc func(ctx context.Context, limit int) ([]domain.LeaderboardRow, bool, error)
	SetFunc func(ctx context.Context, limit int, rows []domain.LeaderboardRow) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			Limit int
		}
		Set []struct {
			Ctx   context.Context
			Limit int
			Rows  []domain.LeaderboardRow
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *rowCacheMock) Get(ctx context.Context, limit int) ([]domain.LeaderboardRow, bool, error) {
	if mock.GetFunc == nil {
		panic("rowCacheMock.GetFunc: method is nil but rowCache.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, limit)
}

func (mock *rowCacheMock) GetCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *rowCacheMock) Set(ctx context.Context, limit int, rows []domain.LeaderboardRow) error {
	if mock.SetFunc == nil {
		panic("rowCacheMock.SetFunc: method is nil but rowCache.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
		Rows  []domain.LeaderboardRow
	}{
		Ctx:   ctx,
		Limit: limit,
		Rows:  rows,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, limit, rows)
}

func (mock *rowCacheMock) SetCalls() []struct {
	Ctx   context.Context
	Limit int
	Rows  []domain.LeaderboardRow
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
		Rows  []domain.LeaderboardRow
	}
	mock.lockSet.RLock()
	calls = mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
