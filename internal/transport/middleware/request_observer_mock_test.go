package middleware

import (
	"sync"
	"time"
)

var _ requestObserver = &requestObserverMock{}

type requestObserverMock struct {
	ObserveRequestFunc func(method string, route string, status int, d time.Duration)
	InFlightFunc       func(delta float64)

	calls struct {
		ObserveRequest []struct {
			Method string
			Route  string
			Status int
			D      time.Duration
		}
		InFlight []struct {
			Delta float64
		}
	}
	lockObserveRequest sync.RWMutex
	lockInFlight       sync.RWMutex
}

func (mock *requestObserverMock) ObserveRequest(method string, route string, status int, d time.Duration) {
	if mock.ObserveRequestFunc == nil {
		panic("requestObserverMock.ObserveRequestFunc: method is nil but requestObserver.ObserveRequest was just called")
	}
	callInfo := struct {
		Method string
		Route  string
		Status int
		D      time.Duration
	}{
		Method: method,
		Route:  route,
		Status: status,
		D:      d,
	}
	mock.lockObserveRequest.Lock()
	mock.calls.ObserveRequest = append(mock.calls.ObserveRequest, callInfo)
	mock.lockObserveRequest.Unlock()
	mock.ObserveRequestFunc(method, route, status, d)
}

func (mock *requestObserverMock) ObserveRequestCalls() []struct {
	Method string
	Route  string
	Status int
	D      time.Duration
} {
	var calls []struct {
		Method string
		Route  string
		Status int
		D      time.Duration
	}
	mock.lockObserveRequest.RLock()
	calls = mock.calls.ObserveRequest
	mock.lockObserveRequest.RUnlock()
	return calls
}

func (mock *requestObserverMock) InFlight(delta float64) {
	if mock.InFlightFunc == nil {
		panic("requestObserverMock.InFlightFunc: method is nil but requestObserver.InFlight was just called")
	}
	callInfo := struct {
		Delta float64
	}{
		Delta: delta,
	}
	mock.lockInFlight.Lock()
	mock.calls.InFlight = append(mock.calls.InFlight, callInfo)
	mock.lockInFlight.Unlock()
	mock.InFlightFunc(delta)
}

func (mock *requestObserverMock) InFlightCalls() []struct {
	Delta float64
} {
	var calls []struct {
		Delta float64
	}
	mock.lockInFlight.RLock()
	calls = mock.calls.InFlight
	mock.lockInFlight.RUnlock()
	return calls
}
