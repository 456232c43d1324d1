package ports

import "go.trai.ch/fanout/internal/core/domain"

// ChangeMapper attributes modified file paths to the projects that own them.
type ChangeMapper interface {
	// Map returns the projects owning the given repo-relative paths, in
	// first-seen order. buildAll is true when any path matches one of the
	// build-all patterns, meaning the whole universe must be selected.
	Map(paths []string, buildAllPatterns []string, set *domain.DependencySet) (selected []domain.InternedString, buildAll bool)
}
