package changelog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the change log Graft node.
const NodeID graft.ID = "adapter.changelog"

func init() {
	graft.Register(graft.Node[ports.ChangeLog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ChangeLog, error) {
			return New(), nil
		},
	})
}
