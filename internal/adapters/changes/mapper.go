// Package changes maps modified file paths onto the projects that own them.
package changes

import (
	"path"
	"strings"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.ChangeMapper = (*Mapper)(nil)

// Mapper implements ports.ChangeMapper with longest-prefix directory
// attribution.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map attributes each path to the project whose directory is the longest
// matching prefix. Paths owned by no project are ignored; paths matching a
// build-all pattern short-circuit to a full selection.
func (m *Mapper) Map(
	paths []string,
	buildAllPatterns []string,
	set *domain.DependencySet,
) ([]domain.InternedString, bool) {
	var selected []domain.InternedString
	seen := make(map[domain.InternedString]bool)

	for _, raw := range paths {
		p := normalize(raw)
		if p == "" {
			continue
		}

		if matchesAny(p, buildAllPatterns) {
			return nil, true
		}

		owner, ok := owningProject(p, set)
		if !ok || seen[owner] {
			continue
		}
		seen[owner] = true
		selected = append(selected, owner)
	}

	return selected, false
}

func normalize(p string) string {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "./")
	return strings.TrimSpace(p)
}

func matchesAny(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := path.Match(pattern, p); matched {
			return true
		}
		if matched, _ := path.Match(pattern, path.Base(p)); matched {
			return true
		}
	}
	return false
}

// owningProject returns the project whose directory is the longest prefix of
// the path. A project rooted at "." owns everything not claimed by a deeper
// project.
func owningProject(p string, set *domain.DependencySet) (domain.InternedString, bool) {
	var owner domain.InternedString
	ownerLen := -1

	for project := range set.All() {
		dir := project.Dir.String()
		if dir == "" {
			continue
		}
		if dir == "." {
			if ownerLen < 0 {
				owner, ownerLen = project.Name, 0
			}
			continue
		}
		if p != dir && !strings.HasPrefix(p, dir+"/") {
			continue
		}
		if len(dir) > ownerLen {
			owner, ownerLen = project.Name, len(dir)
		}
	}

	return owner, ownerLen >= 0
}
