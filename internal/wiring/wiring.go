// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stale/internal/adapters/changelog"
	_ "go.trai.ch/stale/internal/adapters/journal"
	_ "go.trai.ch/stale/internal/adapters/logger"
	_ "go.trai.ch/stale/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/stale/internal/app"
	_ "go.trai.ch/stale/internal/engine/lookup"
)
