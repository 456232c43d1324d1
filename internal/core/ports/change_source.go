package ports

import "context"

// ChangeSource produces the list of modified repo-relative file paths when no
// explicit change list is supplied.
type ChangeSource interface {
	// Changes returns the paths modified since base, relative to root.
	Changes(ctx context.Context, root, base string) ([]string, error)
}
