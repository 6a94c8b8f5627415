package lookup

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
)

// Result is what a lookup returns: either an Immediate value or a
// *Future for an in-flight computation. The interface is sealed; no
// other variants exist.
type Result interface {
	sealedResult()
}

// Immediate is an already-resolved lookup result.
type Immediate struct {
	Match domain.MatchResult
	Err   error
}

func (Immediate) sealedResult() {}

// Future is the shared handle for one in-flight (node, horizon)
// computation. All callers for the same key observe the same Future; it
// resolves exactly once and never regresses.
type Future struct {
	done chan struct{}

	mu          sync.Mutex
	resolved    bool
	subscribers []func(domain.MatchResult, error)
	match       domain.MatchResult
	err         error
}

func (*Future) sealedResult() {}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Done returns a channel closed when the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved value. It must only be called after Done is
// closed.
func (f *Future) Result() (domain.MatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.match, f.err
}

// Wait blocks until the result is available or ctx is cancelled.
// Cancellation yields ErrWaitInterrupted; the underlying computation
// continues unaffected for other observers.
func (f *Future) Wait(ctx context.Context) (domain.MatchResult, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		return domain.NoMatchResult, errors.Join(domain.ErrWaitInterrupted, ctx.Err())
	}
}

// peek returns the resolved value without blocking.
func (f *Future) peek() (domain.MatchResult, error, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.match, f.err, f.resolved
}

// subscribe registers fn to run when the future resolves. If it already
// has, fn runs on the calling goroutine before subscribe returns.
func (f *Future) subscribe(fn func(domain.MatchResult, error)) {
	f.mu.Lock()
	if !f.resolved {
		f.subscribers = append(f.subscribers, fn)
		f.mu.Unlock()
		return
	}
	match, err := f.match, f.err
	f.mu.Unlock()
	fn(match, err)
}

// resolve publishes the result exactly once. Subscribers run outside the
// lock: a callback may itself trigger new lookups.
func (f *Future) resolve(match domain.MatchResult, err error) {
	f.mu.Lock()
	if f.resolved {
		f.mu.Unlock()
		return
	}
	f.resolved = true
	f.match = match
	f.err = err
	subscribers := f.subscribers
	f.subscribers = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range subscribers {
		fn(match, err)
	}
}

// aggregate folds the results of pending sibling computations into a
// parent's future. It subscribes to every pending child and resolves the
// target when the last one completes; it never parks a thread, the final
// child's resolution callback carries the completion. There is no
// short-circuit on an early small match: the aggregate waits for every
// pending child before resolving.
type aggregate struct {
	target *Future

	mu        sync.Mutex
	min       domain.Version
	err       error
	remaining int
}

// newAggregate starts an aggregation seeded with the minimum over the
// self match and all synchronously resolved children.
func newAggregate(target *Future, seed domain.Version, pending []*Future) {
	a := &aggregate{target: target, min: seed, remaining: len(pending)}
	for _, child := range pending {
		child.subscribe(a.observe)
	}
}

func (a *aggregate) observe(match domain.MatchResult, err error) {
	a.mu.Lock()
	if err != nil && a.err == nil {
		a.err = err
	}
	a.min = a.min.Min(match.Version())
	a.remaining--
	last := a.remaining == 0
	min, aggErr := a.min, a.err
	a.mu.Unlock()

	if !last {
		return
	}
	if aggErr != nil {
		a.target.resolve(domain.NoMatchResult, aggErr)
		return
	}
	a.target.resolve(domain.MatchAt(min), nil)
}
