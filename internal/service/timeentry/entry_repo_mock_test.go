package timeentry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.TimeEntry) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	DeleteManualFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EntryFilter
		}
		DeleteManual []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockDeleteManual sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.TimeEntry) error {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
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

func (mock *entryRepoMock) GetByIDCalls() []struct {
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

func (mock *entryRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EntryFilter
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

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.EntryFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EntryFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) DeleteManual(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteManualFunc == nil {
		panic("entryRepoMock.DeleteManualFunc: method is nil but entryRepo.DeleteManual was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDeleteManual.Lock()
	mock.calls.DeleteManual = append(mock.calls.DeleteManual, callInfo)
	mock.lockDeleteManual.Unlock()
	return mock.DeleteManualFunc(ctx, userID, id)
}

func (mock *entryRepoMock) DeleteManualCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}
	mock.lockDeleteManual.RLock()
	calls = mock.calls.DeleteManual
	mock.lockDeleteManual.RUnlock()
	return calls
}
