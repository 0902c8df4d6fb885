package timer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ timerRepo = &timerRepoMock{}

type timerRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Timer, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Timer, error)
	ListFunc             func(ctx context.Context, userID uuid.UUID, filter domain.TimerFilter) ([]domain.Timer, error)
	CreateFunc           func(ctx context.Context, t *domain.Timer) error
	UpdateStateFunc      func(ctx context.Context, t *domain.Timer, expected domain.TimerStatus) error
	DeleteFinishedFunc   func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.TimerFilter
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Timer
		}
		UpdateState []struct {
			Ctx      context.Context
			T        *domain.Timer
			Expected domain.TimerStatus
		}
		DeleteFinished []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Ids    []uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdateState      sync.RWMutex
	lockDeleteFinished   sync.RWMutex
}

func (mock *timerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Timer, error) {
	if mock.GetByIDFunc == nil {
		panic("timerRepoMock.GetByIDFunc: method is nil but timerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *timerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *timerRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Timer, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("timerRepoMock.GetByIDForUpdateFunc: method is nil but timerRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *timerRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *timerRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.TimerFilter) ([]domain.Timer, error) {
	if mock.ListFunc == nil {
		panic("timerRepoMock.ListFunc: method is nil but timerRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.TimerFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *timerRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.TimerFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.TimerFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *timerRepoMock) Create(ctx context.Context, t *domain.Timer) error {
	if mock.CreateFunc == nil {
		panic("timerRepoMock.CreateFunc: method is nil but timerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Timer
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *timerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Timer
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Timer
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *timerRepoMock) UpdateState(ctx context.Context, t *domain.Timer, expected domain.TimerStatus) error {
	if mock.UpdateStateFunc == nil {
		panic("timerRepoMock.UpdateStateFunc: method is nil but timerRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		T        *domain.Timer
		Expected domain.TimerStatus
	}{
		Ctx:      ctx,
		T:        t,
		Expected: expected,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, t, expected)
}

func (mock *timerRepoMock) UpdateStateCalls() []struct {
	Ctx      context.Context
	T        *domain.Timer
	Expected domain.TimerStatus
} {
	var calls []struct {
		Ctx      context.Context
		T        *domain.Timer
		Expected domain.TimerStatus
	}
	mock.lockUpdateState.RLock()
	calls = mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *timerRepoMock) DeleteFinished(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if mock.DeleteFinishedFunc == nil {
		panic("timerRepoMock.DeleteFinishedFunc: method is nil but timerRepo.DeleteFinished was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Ids:    ids,
	}
	mock.lockDeleteFinished.Lock()
	mock.calls.DeleteFinished = append(mock.calls.DeleteFinished, callInfo)
	mock.lockDeleteFinished.Unlock()
	return mock.DeleteFinishedFunc(ctx, userID, ids)
}

func (mock *timerRepoMock) DeleteFinishedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Ids    []uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}
	mock.lockDeleteFinished.RLock()
	calls = mock.calls.DeleteFinished
	mock.lockDeleteFinished.RUnlock()
	return calls
}
