package lookup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/changelog" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the lookup engine Graft node.
const NodeID graft.ID = "engine.lookup"

func init() {
	graft.Register(graft.Node[ports.MatchLookup]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			changelog.NodeID,
		},
		Run: func(ctx context.Context) (ports.MatchLookup, error) {
			changes, err := graft.Dep[ports.ChangeLog](ctx)
			if err != nil {
				return nil, err
			}
			return NewMemoizingLookup(changes), nil
		},
	})
}
