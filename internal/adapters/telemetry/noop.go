// Package telemetry provides phase recording for planning runs, with a no-op
// default and a Progrock-backed recorder.
package telemetry

import (
	"context"

	"go.trai.ch/fanout/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything. The vertex is still
// attached to the context so phase collaborators behave uniformly.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (v *noopVertex) Write(p []byte) (int, error) {
	return len(p), nil
}

func (v *noopVertex) Complete(_ error) {}
