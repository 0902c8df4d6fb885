package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/xp"
)

var _ xpHistoryService = &xpHistoryServiceMock{}

type xpHistoryServiceMock struct {
	HistoryFunc func(ctx context.Context, input xp.HistoryInput) ([]domain.XPHistory, error)

	calls struct {
		History []struct {
			Ctx   context.Context
			Input xp.HistoryInput
		}
	}
	lockHistory sync.RWMutex
}

func (mock *xpHistoryServiceMock) History(ctx context.Context, input xp.HistoryInput) ([]domain.XPHistory, error) {
	if mock.HistoryFunc == nil {
		panic("xpHistoryServiceMock.HistoryFunc: method is nil but xpHistoryService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input xp.HistoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, input)
}

func (mock *xpHistoryServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Input xp.HistoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input xp.HistoryInput
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
