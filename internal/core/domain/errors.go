package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateProject is returned when two discovered projects share a name.
	ErrDuplicateProject = zerr.New("project already exists")

	// ErrSelfDependency is returned when a project lists itself as a dependency.
	ErrSelfDependency = zerr.New("project depends on itself")

	// ErrUnknownDependency is returned when a project references a dependency
	// that is not part of the project universe.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrCycleDetected is returned when the leveling pass cannot make progress
	// because the remaining projects depend on each other.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrCapacityExceeded is returned when the computed build order depth does
	// not fit into the pipeline's static stage slots.
	ErrCapacityExceeded = zerr.New("build order depth exceeds pipeline stage capacity")

	// ErrNoProjects is returned when planning is requested for a repository
	// with no discoverable projects.
	ErrNoProjects = zerr.New("no projects found")

	// ErrUnknownProject is returned when the settings select a project that
	// was not discovered in the repository.
	ErrUnknownProject = zerr.New("selected project not found")
)
