package gitdiff

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/logger"
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the git change source Graft node.
const NodeID graft.ID = "adapter.gitdiff"

func init() {
	graft.Register(graft.Node[ports.ChangeSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ChangeSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiffer(log), nil
		},
	})
}
