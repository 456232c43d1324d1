package ports

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
)

// Discoverer finds the buildable projects of a repository and the dependency
// edges between them.
type Discoverer interface {
	// Discover walks the repository rooted at root and returns the project
	// dependency set plus a stable fingerprint over all manifest contents.
	Discover(ctx context.Context, root string, settings *domain.Settings) (*domain.DependencySet, string, error)
}
