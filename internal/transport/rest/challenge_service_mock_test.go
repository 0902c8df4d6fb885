package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/challenge"
)

var _ challengeService = &challengeServiceMock{}

type challengeServiceMock struct {
	TodayFunc func(ctx context.Context) (*challenge.Status, error)
	ClaimFunc func(ctx context.Context) (*domain.ChallengeClaim, error)

	calls struct {
		Today []struct {
			Ctx context.Context
		}
		Claim []struct {
			Ctx context.Context
		}
	}
	lockToday sync.RWMutex
	lockClaim sync.RWMutex
}

func (mock *challengeServiceMock) Today(ctx context.Context) (*challenge.Status, error) {
	if mock.TodayFunc == nil {
		panic("challengeServiceMock.TodayFunc: method is nil but challengeService.Today was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc(ctx)
}

func (mock *challengeServiceMock) TodayCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockToday.RLock()
	calls = mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}

func (mock *challengeServiceMock) Claim(ctx context.Context) (*domain.ChallengeClaim, error) {
	if mock.ClaimFunc == nil {
		panic("challengeServiceMock.ClaimFunc: method is nil but challengeService.Claim was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx)
}

func (mock *challengeServiceMock) ClaimCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockClaim.RLock()
	calls = mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}
