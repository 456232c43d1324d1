package ports

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
)

// ResultPublisher hands the finished plan to the calling pipeline as named
// result variables.
type ResultPublisher interface {
	Publish(ctx context.Context, plan *domain.Plan) error
}
