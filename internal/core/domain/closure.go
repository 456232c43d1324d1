package domain

// BuildAlso is the result of the dependent-closure computation. It maps each
// directly selected project to the additional projects that must be built
// because they transitively depend on it. Projects already part of the
// selection never appear as extras.
//
// The closure deliberately walks dependents only, never dependencies: a
// changed project forces a rebuild of everything downstream of it, while its
// own prerequisites are assumed to be up to date.
type BuildAlso struct {
	Extra map[InternedString][]InternedString
}

// ComputeBuildAlso computes, for every selected project, all transitive
// dependents (reachable by walking dependency edges backwards) that are not
// themselves selected. A project reachable via multiple paths appears once.
func ComputeBuildAlso(selected []InternedString, set *DependencySet) BuildAlso {
	inSelection := make(map[InternedString]bool, len(selected))
	for _, name := range selected {
		inSelection[name] = true
	}

	result := BuildAlso{
		Extra: make(map[InternedString][]InternedString, len(selected)),
	}

	for _, name := range selected {
		if !set.Contains(name) {
			continue
		}

		seen := map[InternedString]bool{name: true}
		queue := []InternedString{name}
		var extras []InternedString

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, dependent := range set.DirectDependents(current) {
				if seen[dependent] {
					continue
				}
				seen[dependent] = true
				queue = append(queue, dependent)
				if !inSelection[dependent] {
					extras = append(extras, dependent)
				}
			}
		}

		result.Extra[name] = extras
	}

	return result
}

// Merge returns the final build set: the selection followed by every extra,
// deduplicated with first-seen order preserved.
func (b BuildAlso) Merge(selected []InternedString) []InternedString {
	seen := make(map[InternedString]bool, len(selected))
	merged := make([]InternedString, 0, len(selected))

	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	for _, name := range selected {
		for _, extra := range b.Extra[name] {
			if seen[extra] {
				continue
			}
			seen[extra] = true
			merged = append(merged, extra)
		}
	}

	return merged
}
