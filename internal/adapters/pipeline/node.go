package pipeline

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the result publisher Graft node.
const NodeID graft.ID = "adapter.pipeline"

func init() {
	graft.Register(graft.Node[ports.ResultPublisher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResultPublisher, error) {
			p := NewPublisher()
			// Pipelines that collect results from a file set FANOUT_OUTPUT;
			// appending matches the usual results-file contract.
			if path := os.Getenv("FANOUT_OUTPUT"); path != "" {
				f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path is operator-provided
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, "failed to open results file"), "path", path)
				}
				p.SetOutput(f)
			}
			return p, nil
		},
	})
}
