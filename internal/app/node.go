package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/changelog" //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/journal"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/lookup"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			journal.NodeID,
			changelog.NodeID,
			lookup.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.JournalLoader](ctx)
			if err != nil {
				return nil, err
			}

			changes, err := graft.Dep[ports.ChangeLog](ctx)
			if err != nil {
				return nil, err
			}

			matcher, err := graft.Dep[ports.MatchLookup](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, changes, matcher, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tracer,
	}, nil
}
