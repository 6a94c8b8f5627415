package ports

import (
	"context"

	"go.trai.ch/stale/internal/core/domain"
)

// MatchLookup evaluates a dependency node against a validity horizon,
// memoizing per-node computations within one engine instance.
//
//go:generate go run go.uber.org/mock/mockgen -source=lookup.go -destination=mocks/mock_lookup.go -package=mocks
type MatchLookup interface {
	// Lookup blocks until the result for the node under the horizon is
	// available. Interruption via ctx yields a cancellation failure
	// without disturbing other observers of the same computation.
	Lookup(ctx context.Context, node domain.Node, horizon domain.Version) (domain.MatchResult, error)

	// Memoized returns the already-resolved result for the node under
	// the horizon, if one exists, without triggering a computation.
	Memoized(node domain.Node, horizon domain.Version) (domain.MatchResult, bool)
}
