package xp

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddXPFunc      func(ctx context.Context, id uuid.UUID, delta int) (int64, int, error)
	RaiseLevelFunc func(ctx context.Context, id uuid.UUID, level int) (bool, error)

	calls struct {
		AddXP []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
		RaiseLevel []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Level int
		}
	}
	lockAddXP      sync.RWMutex
	lockRaiseLevel sync.RWMutex
}

func (mock *userRepoMock) AddXP(ctx context.Context, id uuid.UUID, delta int) (int64, int, error) {
	if mock.AddXPFunc == nil {
		panic("userRepoMock.AddXPFunc: method is nil but userRepo.AddXP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{
		Ctx:   ctx,
		ID:    id,
		Delta: delta,
	}
	mock.lockAddXP.Lock()
	mock.calls.AddXP = append(mock.calls.AddXP, callInfo)
	mock.lockAddXP.Unlock()
	return mock.AddXPFunc(ctx, id, delta)
}

func (mock *userRepoMock) AddXPCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}
	mock.lockAddXP.RLock()
	calls = mock.calls.AddXP
	mock.lockAddXP.RUnlock()
	return calls
}

func (mock *userRepoMock) RaiseLevel(ctx context.Context, id uuid.UUID, level int) (bool, error) {
	if mock.RaiseLevelFunc == nil {
		panic("userRepoMock.RaiseLevelFunc: method is nil but userRepo.RaiseLevel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Level int
	}{
		Ctx:   ctx,
		ID:    id,
		Level: level,
	}
	mock.lockRaiseLevel.Lock()
	mock.calls.RaiseLevel = append(mock.calls.RaiseLevel, callInfo)
	mock.lockRaiseLevel.Unlock()
	return mock.RaiseLevelFunc(ctx, id, level)
}

func (mock *userRepoMock) RaiseLevelCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Level int
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Level int
	}
	mock.lockRaiseLevel.RLock()
	calls = mock.calls.RaiseLevel
	mock.lockRaiseLevel.RUnlock()
	return calls
}
