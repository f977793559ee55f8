// Package treefinderfakes holds hand-maintained fakes in the shape
// counterfeiter generates.
package treefinderfakes

import (
	"context"
	"sync"

	"github.com/ur4t/gitoxide"
	"github.com/ur4t/gitoxide/hash"
)

// FakeTreeFinder is a hand-maintained stand-in for the output
// `go generate` would produce from gitoxide.TreeFinder via counterfeiter
// (the go:generate directive lives on the interface in finder.go; this
// file is checked in because the toolchain isn't run as part of this
// exercise). It follows counterfeiter's own shape: one record/replay
// struct per method, a mutex, and CallCount/ArgsForCall/Returns
// builders.
type FakeTreeFinder struct {
	FindTreeStub        func(context.Context, hash.Hash, []byte) (gitoxide.Tree, error)
	findTreeMutex       sync.RWMutex
	findTreeArgsForCall []struct {
		ctx     context.Context
		id      hash.Hash
		scratch []byte
	}
	findTreeReturns struct {
		result1 gitoxide.Tree
		result2 error
	}
	findTreeReturnsOnCall map[int]struct {
		result1 gitoxide.Tree
		result2 error
	}
}

func (fake *FakeTreeFinder) FindTree(ctx context.Context, id hash.Hash, scratch []byte) (gitoxide.Tree, error) {
	fake.findTreeMutex.Lock()
	ret, specificReturn := fake.findTreeReturnsOnCall[len(fake.findTreeArgsForCall)]
	fake.findTreeArgsForCall = append(fake.findTreeArgsForCall, struct {
		ctx     context.Context
		id      hash.Hash
		scratch []byte
	}{ctx, id, scratch})
	stub := fake.FindTreeStub
	fakeReturns := fake.findTreeReturns
	fake.findTreeMutex.Unlock()

	if stub != nil {
		return stub(ctx, id, scratch)
	}

	if specificReturn {
		return ret.result1, ret.result2
	}

	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeTreeFinder) FindTreeCallCount() int {
	fake.findTreeMutex.RLock()
	defer fake.findTreeMutex.RUnlock()

	return len(fake.findTreeArgsForCall)
}

func (fake *FakeTreeFinder) FindTreeArgsForCall(i int) (context.Context, hash.Hash, []byte) {
	fake.findTreeMutex.RLock()
	defer fake.findTreeMutex.RUnlock()

	args := fake.findTreeArgsForCall[i]
	return args.ctx, args.id, args.scratch
}

func (fake *FakeTreeFinder) FindTreeReturns(result1 gitoxide.Tree, result2 error) {
	fake.findTreeMutex.Lock()
	defer fake.findTreeMutex.Unlock()

	fake.FindTreeStub = nil
	fake.findTreeReturns = struct {
		result1 gitoxide.Tree
		result2 error
	}{result1, result2}
}

func (fake *FakeTreeFinder) FindTreeReturnsOnCall(i int, result1 gitoxide.Tree, result2 error) {
	fake.findTreeMutex.Lock()
	defer fake.findTreeMutex.Unlock()

	fake.FindTreeStub = nil
	if fake.findTreeReturnsOnCall == nil {
		fake.findTreeReturnsOnCall = make(map[int]struct {
			result1 gitoxide.Tree
			result2 error
		})
	}
	fake.findTreeReturnsOnCall[i] = struct {
		result1 gitoxide.Tree
		result2 error
	}{result1, result2}
}

var _ gitoxide.TreeFinder = new(FakeTreeFinder)
