package challenge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ claimRepo = &claimRepoMock{}

type claimRepoMock struct {
	CreateClaimFunc func(ctx context.Context, c *domain.ChallengeClaim) error
	GetClaimFunc    func(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.ChallengeClaim, error)

	calls struct {
		CreateClaim []struct {
			Ctx context.Context
			C   *domain.ChallengeClaim
		}
		GetClaim []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Day    time.Time
		}
	}
	lockCreateClaim sync.RWMutex
	lockGetClaim    sync.RWMutex
}

func (mock *claimRepoMock) CreateClaim(ctx context.Context, c *domain.ChallengeClaim) error {
	if mock.CreateClaimFunc == nil {
		panic("claimRepoMock.CreateClaimFunc: method is nil but claimRepo.CreateClaim was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.ChallengeClaim
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreateClaim.Lock()
	mock.calls.CreateClaim = append(mock.calls.CreateClaim, callInfo)
	mock.lockCreateClaim.Unlock()
	return mock.CreateClaimFunc(ctx, c)
}

func (mock *claimRepoMock) CreateClaimCalls() []struct {
	Ctx context.Context
	C   *domain.ChallengeClaim
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.ChallengeClaim
	}
	mock.lockCreateClaim.RLock()
	calls = mock.calls.CreateClaim
	mock.lockCreateClaim.RUnlock()
	return calls
}

func (mock *claimRepoMock) GetClaim(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.ChallengeClaim, error) {
	if mock.GetClaimFunc == nil {
		panic("claimRepoMock.GetClaimFunc: method is nil but claimRepo.GetClaim was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Day    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Day:    day,
	}
	mock.lockGetClaim.Lock()
	mock.calls.GetClaim = append(mock.calls.GetClaim, callInfo)
	mock.lockGetClaim.Unlock()
	return mock.GetClaimFunc(ctx, userID, day)
}

func (mock *claimRepoMock) GetClaimCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Day    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Day    time.Time
	}
	mock.lockGetClaim.RLock()
	calls = mock.calls.GetClaim
	mock.lockGetClaim.RUnlock()
	return calls
}
