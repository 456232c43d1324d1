package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewPlanner(recorder), nil
		},
	})
}
