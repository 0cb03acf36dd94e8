package ports

import (
	"boulderhall-service/internal/domain"
	"context"
)

// Contract for retrieving the full hall collection from an external source.
type HallSource interface {
	// Return every hall the source knows about. Derived fields are left zero.
	FetchHalls(ctx context.Context) ([]domain.Hall, error)
}
