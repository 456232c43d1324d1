package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/fanout/internal/core/ports"
)

// Recorder implements ports.Telemetry using the Progrock vertex protocol.
// Phases accumulate on a tape and are rendered as a tree when the run closes.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	out io.Writer
}

// New creates a new Recorder with a default tape, rendered to stderr on Close
// so stdout stays free for the published result variables.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: os.Stderr,
	}
}

// SetOutput redirects the rendered phase display.
func (r *Recorder) SetOutput(w io.Writer) {
	r.out = w
}

// Record starts recording a new vertex for the named phase and attaches it
// to the context for collaborators running inside the phase.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := &vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close finishes the recording session and renders the recorded phases.
// Closing the tape first marks it final, which makes the render include
// every phase's output.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	if tape, ok := r.w.(*progrock.Tape); ok {
		return tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}

// vertex wraps *progrock.VertexRecorder.
type vertex struct {
	vertex *progrock.VertexRecorder
}

// Write records standard output for the phase.
func (v *vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Complete marks the phase as finished, successfully or with an error.
func (v *vertex) Complete(err error) {
	v.vertex.Done(err)
}
