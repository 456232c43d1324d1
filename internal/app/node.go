package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/changes"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/discovery" //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/gitdiff"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/pipeline"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			changes.NodeID,
			gitdiff.NodeID,
			planner.NodeID,
			pipeline.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	mapper, err := graft.Dep[ports.ChangeMapper](ctx)
	if err != nil {
		return nil, err
	}

	changeSource, err := graft.Dep[ports.ChangeSource](ctx)
	if err != nil {
		return nil, err
	}

	pl, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := graft.Dep[ports.ResultPublisher](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, discoverer, mapper, changeSource, pl, publisher, recorder, log), nil
}

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
