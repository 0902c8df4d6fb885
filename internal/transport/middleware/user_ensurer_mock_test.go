package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ userEnsurer = &userEnsurerMock{}

type userEnsurerMock struct {
	EnsureFunc func(ctx context.Context, id uuid.UUID, name string) error

	calls struct {
		Ensure []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Name string
		}
	}
	lockEnsure sync.RWMutex
}

func (mock *userEnsurerMock) Ensure(ctx context.Context, id uuid.UUID, name string) error {
	if mock.EnsureFunc == nil {
		panic("userEnsurerMock.EnsureFunc: method is nil but userEnsurer.Ensure was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Name string
	}{
		Ctx:  ctx,
		ID:   id,
		Name: name,
	}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, id, name)
}

func (mock *userEnsurerMock) EnsureCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Name string
	}
	mock.lockEnsure.RLock()
	calls = mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}
