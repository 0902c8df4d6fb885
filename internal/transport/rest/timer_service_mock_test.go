package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/timer"
)

var _ timerService = &timerServiceMock{}

type timerServiceMock struct {
	CreateFunc         func(ctx context.Context, input timer.CreateInput) (*domain.Timer, error)
	GetFunc            func(ctx context.Context, timerID uuid.UUID) (*timer.View, error)
	ListFunc           func(ctx context.Context, input timer.ListInput) ([]timer.View, error)
	PauseFunc          func(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	ResumeFunc         func(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	CancelFunc         func(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	CompleteFunc       func(ctx context.Context, timerID uuid.UUID, input timer.CompleteInput) (*timer.CompleteResult, error)
	DeleteFinishedFunc func(ctx context.Context, input timer.DeleteFinishedInput) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input timer.CreateInput
		}
		Get []struct {
			Ctx     context.Context
			TimerID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input timer.ListInput
		}
		Pause []struct {
			Ctx     context.Context
			TimerID uuid.UUID
		}
		Resume []struct {
			Ctx     context.Context
			TimerID uuid.UUID
		}
		Cancel []struct {
			Ctx     context.Context
			TimerID uuid.UUID
		}
		Complete []struct {
			Ctx     context.Context
			TimerID uuid.UUID
			Input   timer.CompleteInput
		}
		DeleteFinished []struct {
			Ctx   context.Context
			Input timer.DeleteFinishedInput
		}
	}
	lockCreate         sync.RWMutex
	lockGet            sync.RWMutex
	lockList           sync.RWMutex
	lockPause          sync.RWMutex
	lockResume         sync.RWMutex
	lockCancel         sync.RWMutex
	lockComplete       sync.RWMutex
	lockDeleteFinished sync.RWMutex
}

func (mock *timerServiceMock) Create(ctx context.Context, input timer.CreateInput) (*domain.Timer, error) {
	if mock.CreateFunc == nil {
		panic("timerServiceMock.CreateFunc: method is nil but timerService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timer.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *timerServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input timer.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input timer.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *timerServiceMock) Get(ctx context.Context, timerID uuid.UUID) (*timer.View, error) {
	if mock.GetFunc == nil {
		panic("timerServiceMock.GetFunc: method is nil but timerService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}{
		Ctx:     ctx,
		TimerID: timerID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, timerID)
}

func (mock *timerServiceMock) GetCalls() []struct {
	Ctx     context.Context
	TimerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *timerServiceMock) List(ctx context.Context, input timer.ListInput) ([]timer.View, error) {
	if mock.ListFunc == nil {
		panic("timerServiceMock.ListFunc: method is nil but timerService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timer.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *timerServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input timer.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input timer.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *timerServiceMock) Pause(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error) {
	if mock.PauseFunc == nil {
		panic("timerServiceMock.PauseFunc: method is nil but timerService.Pause was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}{
		Ctx:     ctx,
		TimerID: timerID,
	}
	mock.lockPause.Lock()
	mock.calls.Pause = append(mock.calls.Pause, callInfo)
	mock.lockPause.Unlock()
	return mock.PauseFunc(ctx, timerID)
}

func (mock *timerServiceMock) PauseCalls() []struct {
	Ctx     context.Context
	TimerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}
	mock.lockPause.RLock()
	calls = mock.calls.Pause
	mock.lockPause.RUnlock()
	return calls
}

func (mock *timerServiceMock) Resume(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error) {
	if mock.ResumeFunc == nil {
		panic("timerServiceMock.ResumeFunc: method is nil but timerService.Resume was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}{
		Ctx:     ctx,
		TimerID: timerID,
	}
	mock.lockResume.Lock()
	mock.calls.Resume = append(mock.calls.Resume, callInfo)
	mock.lockResume.Unlock()
	return mock.ResumeFunc(ctx, timerID)
}

func (mock *timerServiceMock) ResumeCalls() []struct {
	Ctx     context.Context
	TimerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}
	mock.lockResume.RLock()
	calls = mock.calls.Resume
	mock.lockResume.RUnlock()
	return calls
}

func (mock *timerServiceMock) Cancel(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error) {
	if mock.CancelFunc == nil {
		panic("timerServiceMock.CancelFunc: method is nil but timerService.Cancel was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}{
		Ctx:     ctx,
		TimerID: timerID,
	}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, timerID)
}

func (mock *timerServiceMock) CancelCalls() []struct {
	Ctx     context.Context
	TimerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TimerID uuid.UUID
	}
	mock.lockCancel.RLock()
	calls = mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *timerServiceMock) Complete(ctx context.Context, timerID uuid.UUID, input timer.CompleteInput) (*timer.CompleteResult, error) {
	if mock.CompleteFunc == nil {
		panic("timerServiceMock.CompleteFunc: method is nil but timerService.Complete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TimerID uuid.UUID
		Input   timer.CompleteInput
	}{
		Ctx:     ctx,
		TimerID: timerID,
		Input:   input,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, timerID, input)
}

func (mock *timerServiceMock) CompleteCalls() []struct {
	Ctx     context.Context
	TimerID uuid.UUID
	Input   timer.CompleteInput
} {
	var calls []struct {
		Ctx     context.Context
		TimerID uuid.UUID
		Input   timer.CompleteInput
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *timerServiceMock) DeleteFinished(ctx context.Context, input timer.DeleteFinishedInput) (int, error) {
	if mock.DeleteFinishedFunc == nil {
		panic("timerServiceMock.DeleteFinishedFunc: method is nil but timerService.DeleteFinished was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timer.DeleteFinishedInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteFinished.Lock()
	mock.calls.DeleteFinished = append(mock.calls.DeleteFinished, callInfo)
	mock.lockDeleteFinished.Unlock()
	return mock.DeleteFinishedFunc(ctx, input)
}

func (mock *timerServiceMock) DeleteFinishedCalls() []struct {
	Ctx   context.Context
	Input timer.DeleteFinishedInput
} {
	var calls []struct {
		Ctx   context.Context
		Input timer.DeleteFinishedInput
	}
	mock.lockDeleteFinished.RLock()
	calls = mock.calls.DeleteFinished
	mock.lockDeleteFinished.RUnlock()
	return calls
}
