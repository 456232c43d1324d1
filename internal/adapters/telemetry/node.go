package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Phase recording is opt-in; CI output stays clean by default.
			if os.Getenv("FANOUT_PROGRESS") != "" {
				return New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
