package timer

import (
	"context"
	"sync"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ xpAwarder = &xpAwarderMock{}

type xpAwarderMock struct {
	AwardFunc func(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error)

	calls struct {
		Award []struct {
			Ctx context.Context
			A   domain.XPAward
		}
	}
	lockAward sync.RWMutex
}

func (mock *xpAwarderMock) Award(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error) {
	if mock.AwardFunc == nil {
		panic("xpAwarderMock.AwardFunc: method is nil but xpAwarder.Award was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.XPAward
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockAward.Lock()
	mock.calls.Award = append(mock.calls.Award, callInfo)
	mock.lockAward.Unlock()
	return mock.AwardFunc(ctx, a)
}

func (mock *xpAwarderMock) AwardCalls() []struct {
	Ctx context.Context
	A   domain.XPAward
} {
	var calls []struct {
		Ctx context.Context
		A   domain.XPAward
	}
	mock.lockAward.RLock()
	calls = mock.calls.Award
	mock.lockAward.RUnlock()
	return calls
}
