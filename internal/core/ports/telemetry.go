package ports

import (
	"context"
	"io"
)

// Telemetry records the phases of a planning run.
type Telemetry interface {
	// Record starts recording a named phase and returns its vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded phase. Writes become the phase's output stream.
type Vertex interface {
	io.Writer
	// Complete marks the phase as finished, successfully or with an error.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex attaches the vertex recording the current phase, so that
// collaborators invoked during the phase can contribute to its output stream.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex recording the current phase, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
