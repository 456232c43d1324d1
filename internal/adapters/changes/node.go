package changes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the change mapper Graft node.
const NodeID graft.ID = "adapter.changes"

func init() {
	graft.Register(graft.Node[ports.ChangeMapper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChangeMapper, error) {
			return NewMapper(), nil
		},
	})
}
