// Package domain contains the core domain models and business logic for the
// project dependency graph.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// DependencySet represents the directed dependency graph over the project
// universe. Edges point from a dependent project to the dependency that must
// be built first. Insertion order is preserved so every downstream computation
// is deterministic for a given input.
type DependencySet struct {
	order    []InternedString
	projects map[InternedString]Project
}

// NewDependencySet creates a new empty DependencySet.
func NewDependencySet() *DependencySet {
	return &DependencySet{
		projects: make(map[InternedString]Project),
	}
}

// Add adds a project to the set.
// It returns an error if a project with the same name already exists or if
// the project lists itself as a dependency.
func (s *DependencySet) Add(p *Project) error {
	if _, exists := s.projects[p.Name]; exists {
		return zerr.With(ErrDuplicateProject, "project", p.Name.String())
	}
	for _, dep := range p.Dependencies {
		if dep == p.Name {
			return zerr.With(ErrSelfDependency, "project", p.Name.String())
		}
	}
	s.projects[p.Name] = *p
	s.order = append(s.order, p.Name)
	return nil
}

// Validate checks that every listed dependency exists in the project universe.
// Cycles are not detected here; they surface as a no-progress failure in
// ComputeLevels, which reports the implicated projects.
func (s *DependencySet) Validate() error {
	for _, name := range s.order {
		for _, dep := range s.projects[name].Dependencies {
			if _, exists := s.projects[dep]; !exists {
				return zerr.With(
					zerr.With(ErrUnknownDependency, "project", name.String()),
					"dependency", dep.String(),
				)
			}
		}
	}
	return nil
}

// Len returns the number of projects in the set.
func (s *DependencySet) Len() int {
	return len(s.projects)
}

// Contains reports whether a project with the given name exists.
func (s *DependencySet) Contains(name InternedString) bool {
	_, exists := s.projects[name]
	return exists
}

// Project returns the project with the given name.
func (s *DependencySet) Project(name InternedString) (Project, bool) {
	p, exists := s.projects[name]
	return p, exists
}

// Names returns the project names in insertion order.
func (s *DependencySet) Names() []InternedString {
	out := make([]InternedString, len(s.order))
	copy(out, s.order)
	return out
}

// DependenciesOf returns the direct dependencies of the named project.
// Unknown names yield nil.
func (s *DependencySet) DependenciesOf(name InternedString) []InternedString {
	return s.projects[name].Dependencies
}

// DirectDependents returns the projects that directly depend on the named
// project, in insertion order.
func (s *DependencySet) DirectDependents(name InternedString) []InternedString {
	var out []InternedString
	for _, candidate := range s.order {
		for _, dep := range s.projects[candidate].Dependencies {
			if dep == name {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}

// All returns an iterator that yields projects in insertion order.
func (s *DependencySet) All() iter.Seq[Project] {
	return func(yield func(Project) bool) {
		for _, name := range s.order {
			if !yield(s.projects[name]) {
				return
			}
		}
	}
}
