package timer

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ refResolver = &refResolverMock{}

type refResolverMock struct {
	ResolveRefFunc func(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, taskID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error)

	calls struct {
		ResolveRef []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID *uuid.UUID
			TaskID    *uuid.UUID
		}
	}
	lockResolveRef sync.RWMutex
}

func (mock *refResolverMock) ResolveRef(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, taskID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	if mock.ResolveRefFunc == nil {
		panic("refResolverMock.ResolveRefFunc: method is nil but refResolver.ResolveRef was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID *uuid.UUID
		TaskID    *uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		ProjectID: projectID,
		TaskID:    taskID,
	}
	mock.lockResolveRef.Lock()
	mock.calls.ResolveRef = append(mock.calls.ResolveRef, callInfo)
	mock.lockResolveRef.Unlock()
	return mock.ResolveRefFunc(ctx, userID, projectID, taskID)
}

func (mock *refResolverMock) ResolveRefCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID *uuid.UUID
		TaskID    *uuid.UUID
	}
	mock.lockResolveRef.RLock()
	calls = mock.calls.ResolveRef
	mock.lockResolveRef.RUnlock()
	return calls
}
