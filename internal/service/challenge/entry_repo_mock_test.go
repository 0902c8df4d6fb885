package challenge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	SumMinutesFunc func(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error)

	calls struct {
		SumMinutes []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   *time.Time
			To     *time.Time
		}
	}
	lockSumMinutes sync.RWMutex
}

func (mock *entryRepoMock) SumMinutes(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error) {
	if mock.SumMinutesFunc == nil {
		panic("entryRepoMock.SumMinutesFunc: method is nil but entryRepo.SumMinutes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
		To     *time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockSumMinutes.Lock()
	mock.calls.SumMinutes = append(mock.calls.SumMinutes, callInfo)
	mock.lockSumMinutes.Unlock()
	return mock.SumMinutesFunc(ctx, userID, from, to)
}

func (mock *entryRepoMock) SumMinutesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
		To     *time.Time
	}
	mock.lockSumMinutes.RLock()
	calls = mock.calls.SumMinutes
	mock.lockSumMinutes.RUnlock()
	return calls
}
