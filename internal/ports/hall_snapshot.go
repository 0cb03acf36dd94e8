package ports

import (
	"boulderhall-service/internal/domain"
	"context"
)

// HallSnapshot persists the last successfully fetched hall list so it can be
// served when the remote source is unreachable, including after a restart.
// Ratings are not stored.
type HallSnapshot interface {
	LoadHalls(ctx context.Context) ([]domain.Hall, error)
	SaveHalls(ctx context.Context, halls []domain.Hall) error
}
