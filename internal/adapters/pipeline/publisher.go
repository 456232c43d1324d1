// Package pipeline publishes a finished plan to the calling pipeline as named
// result variables, one name=value pair per line.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultPublisher = (*Publisher)(nil)

// Variable is one named result value handed to the pipeline.
type Variable struct {
	Name  string
	Value string
}

// Publisher implements ports.ResultPublisher by writing variables to a
// writer, stdout by default.
type Publisher struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPublisher creates a new Publisher writing to stdout.
func NewPublisher() *Publisher {
	return &Publisher{out: os.Stdout}
}

// SetOutput redirects the published variables, e.g. to a results file.
func (p *Publisher) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// Publish renders the plan and writes every variable as a name=value line.
func (p *Publisher) Publish(_ context.Context, plan *domain.Plan) error {
	vars, err := Variables(plan)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range vars {
		if _, err := fmt.Fprintf(p.out, "%s=%s\n", v.Name, v.Value); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write result variable"), "variable", v.Name)
		}
	}
	return nil
}

// Variables renders the plan into its ordered result variables:
// ProjectsJson, ProjectDependenciesJson, BuildOrderJson, one
// projects{s}Json/projects{s}Count pair per stage slot from the top slot down
// to 1, and PlanFingerprint. Every project list is array-shaped even when it
// holds a single project or none.
func Variables(plan *domain.Plan) ([]Variable, error) {
	vars := make([]Variable, 0, 2*len(plan.Stages)+4)

	projects, err := marshal(asStrings(plan.Projects))
	if err != nil {
		return nil, err
	}
	vars = append(vars, Variable{Name: "ProjectsJson", Value: projects})

	deps, err := marshal(plan.Dependencies)
	if err != nil {
		return nil, err
	}
	vars = append(vars, Variable{Name: "ProjectDependenciesJson", Value: deps})

	buildOrder := make(map[string][]string, plan.Order.Depth())
	for level := 1; level <= plan.Order.Depth(); level++ {
		buildOrder[fmt.Sprintf("%d", level)] = asStrings(plan.Order.At(level))
	}
	order, err := marshal(buildOrder)
	if err != nil {
		return nil, err
	}
	vars = append(vars, Variable{Name: "BuildOrderJson", Value: order})

	for _, stage := range plan.Stages {
		batch, err := marshal(asStrings(stage.Projects))
		if err != nil {
			return nil, err
		}
		vars = append(vars,
			Variable{Name: fmt.Sprintf("projects%dJson", stage.Index), Value: batch},
			Variable{Name: fmt.Sprintf("projects%dCount", stage.Index), Value: fmt.Sprintf("%d", stage.Count())},
		)
	}

	vars = append(vars, Variable{Name: "PlanFingerprint", Value: plan.Fingerprint})
	return vars, nil
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal result variable")
	}
	return string(data), nil
}

// asStrings keeps lists array-shaped: nil input still yields an empty,
// non-nil slice so it marshals as [] rather than null.
func asStrings(values []domain.InternedString) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
