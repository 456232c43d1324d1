package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/logger"
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the discovery adapter Graft node.
const NodeID graft.ID = "adapter.discovery"

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(NewWalker(), log), nil
		},
	})
}
