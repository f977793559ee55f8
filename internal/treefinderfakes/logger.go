package treefinderfakes

import (
	"sync"

	"github.com/ur4t/gitoxide/log"
)

// FakeLogger stands in for the counterfeiter output of log.Logger's
// go:generate directive, kept checked in for the same reason as
// FakeTreeFinder.
type FakeLogger struct {
	DebugStub        func(string, ...any)
	debugMutex       sync.RWMutex
	debugArgsForCall []struct {
		msg            string
		keysAndValues []any
	}

	InfoStub        func(string, ...any)
	infoMutex       sync.RWMutex
	infoArgsForCall []struct {
		msg            string
		keysAndValues []any
	}

	WarnStub        func(string, ...any)
	warnMutex       sync.RWMutex
	warnArgsForCall []struct {
		msg            string
		keysAndValues []any
	}

	ErrorStub        func(string, ...any)
	errorMutex       sync.RWMutex
	errorArgsForCall []struct {
		msg            string
		keysAndValues []any
	}
}

func (fake *FakeLogger) Debug(msg string, keysAndValues ...any) {
	fake.debugMutex.Lock()
	fake.debugArgsForCall = append(fake.debugArgsForCall, struct {
		msg           string
		keysAndValues []any
	}{msg, keysAndValues})
	stub := fake.DebugStub
	fake.debugMutex.Unlock()

	if stub != nil {
		stub(msg, keysAndValues...)
	}
}

func (fake *FakeLogger) DebugCallCount() int {
	fake.debugMutex.RLock()
	defer fake.debugMutex.RUnlock()

	return len(fake.debugArgsForCall)
}

func (fake *FakeLogger) Info(msg string, keysAndValues ...any) {
	fake.infoMutex.Lock()
	fake.infoArgsForCall = append(fake.infoArgsForCall, struct {
		msg           string
		keysAndValues []any
	}{msg, keysAndValues})
	stub := fake.InfoStub
	fake.infoMutex.Unlock()

	if stub != nil {
		stub(msg, keysAndValues...)
	}
}

func (fake *FakeLogger) InfoCallCount() int {
	fake.infoMutex.RLock()
	defer fake.infoMutex.RUnlock()

	return len(fake.infoArgsForCall)
}

func (fake *FakeLogger) Warn(msg string, keysAndValues ...any) {
	fake.warnMutex.Lock()
	fake.warnArgsForCall = append(fake.warnArgsForCall, struct {
		msg           string
		keysAndValues []any
	}{msg, keysAndValues})
	stub := fake.WarnStub
	fake.warnMutex.Unlock()

	if stub != nil {
		stub(msg, keysAndValues...)
	}
}

func (fake *FakeLogger) WarnCallCount() int {
	fake.warnMutex.RLock()
	defer fake.warnMutex.RUnlock()

	return len(fake.warnArgsForCall)
}

func (fake *FakeLogger) Error(msg string, keysAndValues ...any) {
	fake.errorMutex.Lock()
	fake.errorArgsForCall = append(fake.errorArgsForCall, struct {
		msg           string
		keysAndValues []any
	}{msg, keysAndValues})
	stub := fake.ErrorStub
	fake.errorMutex.Unlock()

	if stub != nil {
		stub(msg, keysAndValues...)
	}
}

func (fake *FakeLogger) ErrorCallCount() int {
	fake.errorMutex.RLock()
	defer fake.errorMutex.RUnlock()

	return len(fake.errorArgsForCall)
}

var _ log.Logger = new(FakeLogger)
