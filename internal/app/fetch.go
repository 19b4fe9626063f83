package app

import (
	"context"
	"sync"
)

// Fetcher serializes the effect of overlapping fetches for one logical fetch
// site: last-triggered wins, not last-resolved. The in-flight call is never
// canceled; a stale result is simply discarded before apply.
type Fetcher[T any] struct {
	mu  sync.Mutex
	gen uint64
	wg  sync.WaitGroup
}

// Fetch runs fn in the background and hands its result to apply unless a
// newer Fetch was triggered in the meantime. The staleness check and the
// apply call happen under one lock, so once a result has been applied no
// older result can land after it; triggering a new fetch waits for an apply
// already in progress. apply must not call Fetch on the same Fetcher.
func (f *Fetcher[T]) Fetch(ctx context.Context, fn func(context.Context) (T, error), apply func(T, error)) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		v, err := fn(ctx)
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen {
			apply(v, err)
		}
	}()
}

// Wait blocks until all triggered fetches have resolved (applied or
// discarded). Mostly useful in tests and shutdown paths.
func (f *Fetcher[T]) Wait() { f.wg.Wait() }

// InflightGuard blocks duplicate submissions while one is still resolving,
// the way a disabled submit button does.
type InflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{active: make(map[string]struct{})}
}

func (g *InflightGuard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

func (g *InflightGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
