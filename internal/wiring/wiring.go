// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fanout/internal/adapters/changes"
	_ "go.trai.ch/fanout/internal/adapters/config"
	_ "go.trai.ch/fanout/internal/adapters/discovery"
	_ "go.trai.ch/fanout/internal/adapters/gitdiff"
	_ "go.trai.ch/fanout/internal/adapters/logger"
	_ "go.trai.ch/fanout/internal/adapters/pipeline"
	_ "go.trai.ch/fanout/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/fanout/internal/app"
	_ "go.trai.ch/fanout/internal/engine/planner"
)
