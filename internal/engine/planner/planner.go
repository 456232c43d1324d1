// Package planner composes the core planning steps into a single run:
// dependent closure, dependency leveling and stage emission.
package planner

import (
	"context"
	"fmt"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner turns a selection over the project universe into a complete Plan.
// It is a pure, synchronous, single-pass computation; the only side channel
// is phase telemetry.
type Planner struct {
	telemetry ports.Telemetry
}

// NewPlanner creates a new Planner.
func NewPlanner(telemetry ports.Telemetry) *Planner {
	return &Planner{telemetry: telemetry}
}

// Plan computes the leveled, staged build plan for the selected projects.
//
// The selection is first closed over transitive dependents (anything that
// depends on a selected project is rebuilt too; the selection's own
// dependencies are not pulled in). The closed set is then stratified into
// levels and the levels are packed into the pipeline's stage slots.
func (p *Planner) Plan(
	ctx context.Context,
	set *domain.DependencySet,
	selected []domain.InternedString,
	capacity int,
	fingerprint string,
) (*domain.Plan, error) {
	if err := set.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid dependency graph")
	}

	ctx, vertex := p.telemetry.Record(ctx, "close selection over dependents")
	closure := domain.ComputeBuildAlso(selected, set)
	buildSet := closure.Merge(selected)
	_, _ = fmt.Fprintf(vertex, "%d selected, %d after closure\n", len(selected), len(buildSet))
	vertex.Complete(nil)

	ctx, vertex = p.telemetry.Record(ctx, "level build order")
	order, err := domain.ComputeLevels(buildSet, set)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}
	_, _ = fmt.Fprintf(vertex, "depth %d\n", order.Depth())
	vertex.Complete(nil)

	_, vertex = p.telemetry.Record(ctx, "emit stages")
	stages, err := domain.EmitStages(order, capacity)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}
	vertex.Complete(nil)

	return &domain.Plan{
		Projects:     buildSet,
		Dependencies: dependencyMap(buildSet, set),
		Order:        order,
		Stages:       stages,
		Capacity:     capacity,
		Fingerprint:  fingerprint,
	}, nil
}

// dependencyMap extracts the direct dependency lists of the build set.
func dependencyMap(buildSet []domain.InternedString, set *domain.DependencySet) map[string][]string {
	deps := make(map[string][]string, len(buildSet))
	for _, name := range buildSet {
		direct := set.DependenciesOf(name)
		list := make([]string, len(direct))
		for i, dep := range direct {
			list[i] = dep.String()
		}
		deps[name.String()] = list
	}
	return deps
}
