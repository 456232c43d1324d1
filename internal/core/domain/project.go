package domain

// Project represents a buildable unit in the repository.
// Its name is the stable identity; everything else is bookkeeping for the
// adapters (change attribution needs the directory).
type Project struct {
	Name         InternedString
	Dir          InternedString
	Dependencies []InternedString
}
