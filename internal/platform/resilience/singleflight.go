package resilience

import "sync"

// SingleFlight collapses concurrent calls for one key into a single
// execution; waiters receive the leader's result. The third return of Do
// reports whether the result was shared. Zero value is ready to use.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg  sync.WaitGroup
	val any
	err error
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if existing, ok := g.calls[key]; ok {
		g.mu.Unlock()
		existing.wg.Wait()
		return existing.val, existing.err, true
	}

	leader := &call{}
	leader.wg.Add(1)
	g.calls[key] = leader
	g.mu.Unlock()

	leader.val, leader.err = fn()
	leader.wg.Done()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return leader.val, leader.err, false
}
