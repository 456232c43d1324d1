package domain

// Settings is the repository-wide planner configuration, loaded once per run.
type Settings struct {
	// Version of the settings schema.
	Version string

	// Capacity is the number of sequential stage slots the calling pipeline
	// statically defines. The computed build order depth must fit into it.
	Capacity int

	// AlwaysBuildAllProjects forces the full project universe into the
	// selection regardless of what changed.
	AlwaysBuildAllProjects bool

	// Projects is an optional explicit selection. When non-empty it takes
	// precedence over change-based selection.
	Projects []string

	// BuildAllPatterns are path patterns that, when matched by any modified
	// file, select every project (repo-wide build inputs such as shared
	// toolchain config).
	BuildAllPatterns []string

	// Ignore lists directory name patterns skipped during discovery.
	Ignore []string

	// Manifest is the per-project marker filename. Empty means the default.
	Manifest string
}
