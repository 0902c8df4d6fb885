package timer

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	TimerTransitionFunc func(op string, err error)

	calls struct {
		TimerTransition []struct {
			Op  string
			Err error
		}
	}
	lockTimerTransition sync.RWMutex
}

func (mock *recorderMock) TimerTransition(op string, err error) {
	if mock.TimerTransitionFunc == nil {
		panic("recorderMock.TimerTransitionFunc: method is nil but recorder.TimerTransition was just called")
	}
	callInfo := struct {
		Op  string
		Err error
	}{
		Op:  op,
		Err: err,
	}
	mock.lockTimerTransition.Lock()
	mock.calls.TimerTransition = append(mock.calls.TimerTransition, callInfo)
	mock.lockTimerTransition.Unlock()
	mock.TimerTransitionFunc(op, err)
}

func (mock *recorderMock) TimerTransitionCalls() []struct {
	Op  string
	Err error
} {
	var calls []struct {
		Op  string
		Err error
	}
	mock.lockTimerTransition.RLock()
	calls = mock.calls.TimerTransition
	mock.lockTimerTransition.RUnlock()
	return calls
}
