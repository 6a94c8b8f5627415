package lookup_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stale/internal/adapters/changelog"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports/mocks"
	"go.trai.ch/stale/internal/engine/lookup"
	"go.uber.org/mock/gomock"
)

func TestLookup_EmptyChanges_NoMatch(t *testing.T) {
	engine := lookup.NewMemoizingLookup(changelog.New())

	got := mustLookup(t, engine, domain.NewFileDependency("test_path"), 0)
	if got != domain.NoMatchResult {
		t.Errorf("Lookup() = %v, want no match", got)
	}
}

func TestLookup_FileChange_HorizonInRange(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "abc/def", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := domain.NewFileDependency("abc/def")
	if got := mustLookup(t, engine, node, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup(horizon=99) = %v, want match@100", got)
	}
}

func TestLookup_FileChange_HorizonOutOfRange(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "abc/def", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := domain.NewFileDependency("abc/def")
	if got := mustLookup(t, engine, node, 100); got != domain.NoMatchResult {
		t.Errorf("Lookup(horizon=100) = %v, want no match", got)
	}
}

func TestLookup_AggregatesDependencies(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "dep/a", 99)
	mustRegister(t, changes, "dep/b", 100)
	mustRegister(t, changes, "dep/c", 101)
	engine := lookup.NewMemoizingLookup(changes)

	node := domain.NewFileDependency("abc/def",
		domain.NewFileDependency("dep/a"),
		domain.NewFileDependency("dep/b"),
		domain.NewFileDependency("dep/c"),
	)

	// One engine across all horizons: memoization is per (node, horizon)
	// pair, so lowering the horizon must still admit earlier records.
	tests := []struct {
		horizon domain.Version
		want    domain.MatchResult
	}{
		{98, domain.MatchAt(99)},
		{99, domain.MatchAt(100)},
		{100, domain.MatchAt(101)},
		{101, domain.NoMatchResult},
	}
	for _, tt := range tests {
		if got := mustLookup(t, engine, node, tt.horizon); got != tt.want {
			t.Errorf("Lookup(horizon=%d) = %v, want %v", tt.horizon, got, tt.want)
		}
	}
}

func TestLookup_AsyncDependencies_AggregatesDependencies(t *testing.T) {
	tests := []struct {
		horizon domain.Version
		want    domain.MatchResult
	}{
		{98, domain.MatchAt(99)},
		{99, domain.MatchAt(100)},
		{100, domain.MatchAt(101)},
		{101, domain.NoMatchResult},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			changes := changelog.New()
			mustRegister(t, changes, "dep/a", 99)
			mustRegister(t, changes, "dep/b", 100)
			mustRegister(t, changes, "dep/c", 101)
			engine := lookup.NewMemoizingLookup(changes)

			depA := newControllableNode("dep/a")
			depB := newControllableNode("dep/b")
			depC := newControllableNode("dep/c")
			parent := domain.NewFileDependency("abc/def", depA, depB, depC)

			// Each dependency is claimed by its own caller before the
			// parent query starts.
			var wg sync.WaitGroup
			for _, dep := range []*controllableNode{depA, depB, depC} {
				wg.Add(1)
				go func(dep *controllableNode) {
					defer wg.Done()
					_, _ = engine.Lookup(context.Background(), dep, tt.horizon)
				}(dep)
			}
			<-depA.entered
			<-depB.entered
			<-depC.entered

			result := engine.GetValueOrFuture(parent, tt.horizon)
			future, ok := result.(*lookup.Future)
			if !ok {
				t.Fatalf("expected a pending future, got %T", result)
			}
			select {
			case <-future.Done():
				t.Fatal("future resolved before its dependencies")
			default:
			}

			// Releasing one dependency is not enough; the aggregate waits
			// for every pending sibling.
			close(depA.release)
			select {
			case <-future.Done():
				t.Fatal("future resolved with siblings still pending")
			default:
			}

			close(depB.release)
			close(depC.release)
			wg.Wait()

			got, err := future.Wait(context.Background())
			if err != nil {
				t.Fatalf("Wait() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Wait() = %v, want %v", got, tt.want)
			}
			for _, dep := range []*controllableNode{depA, depB, depC} {
				if calls := dep.calls.Load(); calls != 1 {
					t.Errorf("dependency %s computed %d times, want 1", dep.path, calls)
				}
			}
		})
	}
}

func TestLookup_Dedup_ConcurrentCallers(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "abc/def", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := newControllableNode("abc/def")

	const callers = 16
	results := make(chan domain.MatchResult, callers)
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			got, err := engine.Lookup(context.Background(), node, 99)
			results <- got
			errs <- err
		}()
	}

	<-node.entered
	close(node.release)

	for i := 0; i < callers; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("Lookup() failed: %v", err)
		}
		if got := <-results; got != domain.MatchAt(100) {
			t.Errorf("Lookup() = %v, want match@100", got)
		}
	}
	if calls := node.calls.Load(); calls != 1 {
		t.Errorf("node computed %d times, want exactly 1", calls)
	}
}

func TestLookup_SharedChild_ComputedOnce(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "shared", 100)
	engine := lookup.NewMemoizingLookup(changes)

	shared := newControllableNode("shared")
	close(shared.release)
	left := domain.NewFileDependency("left", shared)
	right := domain.NewFileDependency("right", shared)

	if got := mustLookup(t, engine, left, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup(left) = %v, want match@100", got)
	}
	if got := mustLookup(t, engine, right, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup(right) = %v, want match@100", got)
	}
	if calls := shared.calls.Load(); calls != 1 {
		t.Errorf("shared child computed %d times, want 1", calls)
	}
}

func TestLookup_Listing_MatchesContainedFileChange(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "dir/a", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := domain.NewListingDependency(domain.NewFileDependency("dir"))
	if got := mustLookup(t, engine, node, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup() = %v, want match@100", got)
	}
}

func TestLookup_Listing_MatchesDirectoryChange(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "dir", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := domain.NewListingDependency(domain.NewFileDependency("dir"))
	if got := mustLookup(t, engine, node, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup() = %v, want match@100", got)
	}
}

func TestLookup_Listing_MatchesDependencyChange(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "dep/a", 100)
	engine := lookup.NewMemoizingLookup(changes)

	// "dep/a" is not under "dir"; the match comes from the wrapped
	// node's dependency closure.
	node := domain.NewListingDependency(
		domain.NewFileDependency("dir", domain.NewFileDependency("dep/a")),
	)
	if got := mustLookup(t, engine, node, 99); got != domain.MatchAt(100) {
		t.Errorf("Lookup() = %v, want match@100", got)
	}
}

func TestLookup_MatcherConsultedOncePerKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matcher := mocks.NewMockChangeLog(ctrl)
	matcher.EXPECT().MatchFileChange("abc/def", domain.Version(99)).Return(domain.Version(100)).Times(1)
	engine := lookup.NewMemoizingLookup(matcher)

	node := domain.NewFileDependency("abc/def")
	for i := 0; i < 3; i++ {
		if got := mustLookup(t, engine, node, 99); got != domain.MatchAt(100) {
			t.Errorf("Lookup() = %v, want match@100", got)
		}
	}
}

func TestLookup_CycleDetected(t *testing.T) {
	engine := lookup.NewMemoizingLookup(changelog.New())

	a := &cyclicNode{path: "cycle/a"}
	b := &cyclicNode{path: "cycle/b"}
	a.child = b
	b.child = a

	_, err := engine.Lookup(context.Background(), a, 0)
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", err)
	}
}

func TestLookup_WaitInterrupted(t *testing.T) {
	changes := changelog.New()
	mustRegister(t, changes, "abc/def", 100)
	engine := lookup.NewMemoizingLookup(changes)

	node := newControllableNode("abc/def")

	claimed := make(chan domain.MatchResult, 1)
	go func() {
		got, _ := engine.Lookup(context.Background(), node, 99)
		claimed <- got
	}()
	<-node.entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := engine.GetValueOrFuture(node, 99)
	future, ok := result.(*lookup.Future)
	if !ok {
		t.Fatalf("expected a pending future, got %T", result)
	}
	if _, err := future.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected a cancellation failure, got %v", err)
	}

	// The interrupted wait must not disturb the computation.
	close(node.release)
	if got := <-claimed; got != domain.MatchAt(100) {
		t.Errorf("claiming caller got %v, want match@100", got)
	}
	if got, err := future.Wait(context.Background()); err != nil || got != domain.MatchAt(100) {
		t.Errorf("Wait() after completion = %v, %v, want match@100", got, err)
	}
}

func TestLookup_DefectResolvesObservers(t *testing.T) {
	engine := lookup.NewMemoizingLookup(changelog.New())

	defect := errors.New("malformed path table")
	node := &failingNode{path: "bad", err: defect}
	parent := domain.NewFileDependency("abc/def", node)

	if _, err := engine.Lookup(context.Background(), parent, 0); !errors.Is(err, defect) {
		t.Errorf("expected the defect to propagate, got %v", err)
	}
	// The entry is resolved, not stuck claimed; later observers see the
	// same failure.
	if _, err := engine.Lookup(context.Background(), parent, 0); !errors.Is(err, defect) {
		t.Errorf("expected the memoized failure, got %v", err)
	}
}

func mustLookup(t *testing.T, engine *lookup.MemoizingLookup, node domain.Node, horizon domain.Version) domain.MatchResult {
	t.Helper()
	got, err := engine.Lookup(context.Background(), node, horizon)
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	return got
}

func mustRegister(t *testing.T, changes *changelog.VersionedChanges, path string, v domain.Version) {
	t.Helper()
	if err := changes.RegisterFileChange(path, v); err != nil {
		t.Fatalf("RegisterFileChange(%q, %d): %v", path, v, err)
	}
}

// controllableNode blocks inside FindEarliestMatch until released, to
// exercise concurrency interleavings, and counts its computations.
type controllableNode struct {
	path      string
	deps      []domain.Node
	entered   chan struct{}
	release   chan struct{}
	enterOnce sync.Once
	calls     atomic.Int32
}

func newControllableNode(path string, deps ...domain.Node) *controllableNode {
	return &controllableNode{
		path:    path,
		deps:    deps,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (n *controllableNode) ResolvedPath() string { return n.path }

func (n *controllableNode) DependencyCount() int { return len(n.deps) }

func (n *controllableNode) Dependency(index int) domain.Node { return n.deps[index] }

func (n *controllableNode) Key() domain.NodeKey {
	return domain.NodeKey(xxhash.Sum64String("controllable\x00" + n.path))
}

func (n *controllableNode) FindEarliestMatch(changes domain.ChangeMatcher, horizon domain.Version) (domain.Version, error) {
	n.calls.Add(1)
	n.enterOnce.Do(func() { close(n.entered) })
	<-n.release
	return changes.MatchFileChange(n.path, horizon), nil
}

// cyclicNode violates the DAG invariant on purpose.
type cyclicNode struct {
	path  string
	child domain.Node
}

func (n *cyclicNode) ResolvedPath() string { return n.path }

func (n *cyclicNode) DependencyCount() int { return 1 }

func (n *cyclicNode) Dependency(int) domain.Node { return n.child }

func (n *cyclicNode) Key() domain.NodeKey {
	return domain.NodeKey(xxhash.Sum64String("cyclic\x00" + n.path))
}

func (n *cyclicNode) FindEarliestMatch(domain.ChangeMatcher, domain.Version) (domain.Version, error) {
	return domain.NoMatch, nil
}

// failingNode raises a deterministic defect from its own evaluation.
type failingNode struct {
	path string
	err  error
}

func (n *failingNode) ResolvedPath() string { return n.path }

func (n *failingNode) DependencyCount() int { return 0 }

func (n *failingNode) Dependency(int) domain.Node { return nil }

func (n *failingNode) Key() domain.NodeKey {
	return domain.NodeKey(xxhash.Sum64String("failing\x00" + n.path))
}

func (n *failingNode) FindEarliestMatch(domain.ChangeMatcher, domain.Version) (domain.Version, error) {
	return domain.NoMatch, n.err
}
