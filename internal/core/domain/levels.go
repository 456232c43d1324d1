package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LeveledBuildOrder assigns every project in the build set to an integer
// level >= 1 such that all of a project's dependencies (within the set) live
// in strictly lower levels. It is immutable once computed.
type LeveledBuildOrder struct {
	levels map[int][]InternedString
	depth  int
}

// NewLeveledBuildOrder builds an order from an explicit level assignment.
// Depth is the highest populated level; unpopulated levels below it read as
// empty. Used when a caller already holds a sparse assignment.
func NewLeveledBuildOrder(levels map[int][]InternedString) LeveledBuildOrder {
	order := LeveledBuildOrder{
		levels: make(map[int][]InternedString, len(levels)),
	}
	for level, projects := range levels {
		if len(projects) == 0 {
			continue
		}
		order.levels[level] = projects
		if level > order.depth {
			order.depth = level
		}
	}
	return order
}

// Depth returns the highest assigned level, i.e. the length of the longest
// dependency chain within the build set. An empty order has depth 0.
func (o LeveledBuildOrder) Depth() int {
	return o.depth
}

// At returns the projects assigned to the given level.
// The lookup is total: a level that was never populated yields nil.
func (o LeveledBuildOrder) At(level int) []InternedString {
	return o.levels[level]
}

// ComputeLevels stratifies the given projects by dependency depth.
//
// Each pass assigns the next level to every still-unassigned project whose
// dependencies, restricted to the build set, were all assigned in earlier
// passes. Dependencies outside the set are treated as already built. A pass
// that assigns nothing while projects remain means the remainder forms a
// cycle; that is fatal and the unresolved projects are named in the error.
//
// Projects are scanned in input order on every pass, so the output is
// deterministic for a given enumeration of the build set.
func ComputeLevels(projects []InternedString, set *DependencySet) (LeveledBuildOrder, error) {
	inSet := make(map[InternedString]bool, len(projects))
	for _, name := range projects {
		inSet[name] = true
	}

	assigned := make(map[InternedString]int, len(projects))
	order := LeveledBuildOrder{
		levels: make(map[int][]InternedString),
	}

	remaining := len(projects)
	for remaining > 0 {
		level := order.depth + 1

		var batch []InternedString
		for _, name := range projects {
			if _, done := assigned[name]; done {
				continue
			}
			if unassignedDeps(name, set, inSet, assigned) {
				continue
			}
			batch = append(batch, name)
		}

		if len(batch) == 0 {
			return LeveledBuildOrder{}, cycleError(projects, assigned)
		}

		// Assign after the scan so projects leveled in this pass do not
		// satisfy dependencies within the same pass.
		for _, name := range batch {
			assigned[name] = level
		}
		order.levels[level] = batch
		order.depth = level
		remaining -= len(batch)
	}

	return order, nil
}

// unassignedDeps reports whether the project still has an in-set dependency
// without a level.
func unassignedDeps(
	name InternedString,
	set *DependencySet,
	inSet map[InternedString]bool,
	assigned map[InternedString]int,
) bool {
	for _, dep := range set.DependenciesOf(name) {
		if !inSet[dep] {
			continue
		}
		if _, done := assigned[dep]; !done {
			return true
		}
	}
	return false
}

func cycleError(projects []InternedString, assigned map[InternedString]int) error {
	var unresolved []string
	for _, name := range projects {
		if _, done := assigned[name]; !done {
			unresolved = append(unresolved, name.String())
		}
	}
	return zerr.With(ErrCycleDetected, "unresolved", strings.Join(unresolved, ", "))
}
