// Package lookup implements the concurrent memoizing match engine: given
// a dependency node and a validity horizon, it answers "what is the
// earliest version after the horizon at which anything in the node's
// transitive closure changed?", deduplicating concurrent evaluation so at
// most one computation per (node, horizon) is ever in flight.
package lookup

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/zerr"
)

// memoKey scopes memoized entries to a (node identity, horizon) pair.
// Entries are never invalidated: the change log only grows and a fresh
// engine is paired with a fresh log per build version epoch.
type memoKey struct {
	node    domain.NodeKey
	horizon domain.Version
}

// MemoizingLookup evaluates dependency nodes against one change log.
// It is safe for unbounded concurrent use; the memoization table is the
// only mutable shared state.
type MemoizingLookup struct {
	changes domain.ChangeMatcher
	memo    sync.Map // memoKey -> *Future
}

// NewMemoizingLookup creates an engine over the given change log. The
// engine only reads the log; pair one engine with one log per epoch.
func NewMemoizingLookup(changes domain.ChangeMatcher) *MemoizingLookup {
	return &MemoizingLookup{changes: changes}
}

// GetValueOrFuture returns the match result for the node under the
// horizon: an Immediate if it is already known or computable without
// waiting on another computation, otherwise a *Future shared by every
// caller of the same key. The calling goroutine is never blocked on
// another node's in-flight computation.
func (l *MemoizingLookup) GetValueOrFuture(node domain.Node, horizon domain.Version) Result {
	return l.lookup(node, horizon, make(map[memoKey]struct{}))
}

// Lookup is the blocking convenience over GetValueOrFuture, implementing
// ports.MatchLookup. Cancelling ctx abandons only this caller's wait.
func (l *MemoizingLookup) Lookup(ctx context.Context, node domain.Node, horizon domain.Version) (domain.MatchResult, error) {
	switch r := l.GetValueOrFuture(node, horizon).(type) {
	case Immediate:
		return r.Match, r.Err
	case *Future:
		return r.Wait(ctx)
	default:
		panic(fmt.Sprintf("unknown lookup result %T", r))
	}
}

// Memoized returns the already-resolved result for the node under the
// horizon, if any, without triggering or waiting on a computation.
func (l *MemoizingLookup) Memoized(node domain.Node, horizon domain.Version) (domain.MatchResult, bool) {
	entry, ok := l.memo.Load(memoKey{node: node.Key(), horizon: horizon})
	if !ok {
		return domain.NoMatchResult, false
	}
	match, err, resolved := entry.(*Future).peek()
	if !resolved || err != nil {
		return domain.NoMatchResult, false
	}
	return match, true
}

// lookup resolves one key, claiming its computation if nobody has yet.
// visiting holds the keys on the current evaluation stack; the graph is
// asserted acyclic, but a cycle here would deadlock the claim/subscribe
// protocol, so it is checked and surfaced as a defect.
func (l *MemoizingLookup) lookup(node domain.Node, horizon domain.Version, visiting map[memoKey]struct{}) Result {
	key := memoKey{node: node.Key(), horizon: horizon}
	if _, onStack := visiting[key]; onStack {
		return Immediate{
			Match: domain.NoMatchResult,
			Err:   zerr.With(zerr.Wrap(domain.ErrCycleDetected, "failed to resolve node"), "path", node.ResolvedPath()),
		}
	}

	if entry, ok := l.memo.Load(key); ok {
		return asResult(entry.(*Future))
	}

	claimed := newFuture()
	entry, loaded := l.memo.LoadOrStore(key, claimed)
	if loaded {
		// Another caller owns this computation; attach to it.
		return asResult(entry.(*Future))
	}

	visiting[key] = struct{}{}
	l.compute(node, horizon, claimed, visiting)
	delete(visiting, key)
	return asResult(claimed)
}

// compute evaluates a claimed node: the node's own match first, then
// every child routed back through the engine. If all children resolve
// synchronously the result is aggregated and published on the spot; if
// any are pending, an aggregate subscribes to them and the last child's
// completion publishes the result.
func (l *MemoizingLookup) compute(node domain.Node, horizon domain.Version, target *Future, visiting map[memoKey]struct{}) {
	// A claimed entry must always resolve, or every observer would hang;
	// a panicking node evaluation is surfaced as a failure value.
	defer func() {
		if r := recover(); r != nil {
			target.resolve(domain.NoMatchResult, zerr.New(fmt.Sprintf("match evaluation panicked: %v", r)))
		}
	}()

	self, err := node.FindEarliestMatch(l.changes, horizon)
	if err != nil {
		target.resolve(domain.NoMatchResult, zerr.With(zerr.Wrap(err, "failed to match node"), "path", node.ResolvedPath()))
		return
	}

	min := self
	var pending []*Future
	for i := 0; i < node.DependencyCount(); i++ {
		switch r := l.lookup(node.Dependency(i), horizon, visiting).(type) {
		case Immediate:
			if r.Err != nil {
				target.resolve(domain.NoMatchResult, r.Err)
				return
			}
			min = min.Min(r.Match.Version())
		case *Future:
			pending = append(pending, r)
		}
	}

	if len(pending) == 0 {
		target.resolve(domain.MatchAt(min), nil)
		return
	}
	newAggregate(target, min, pending)
}

// asResult collapses an already-resolved future into an Immediate so the
// fast path stays free of asynchronous machinery.
func asResult(f *Future) Result {
	if match, err, ok := f.peek(); ok {
		return Immediate{Match: match, Err: err}
	}
	return f
}
