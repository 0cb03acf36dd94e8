package services

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"boulderhall-service/internal/ports"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Catalog owns the most recently fetched hall list.
//
// Refresh replaces the list only on success; a failed fetch leaves whatever was
// there before (possibly nothing). Overlapping refreshes are not coalesced: each
// completes independently and the last one to finish wins.
type Catalog struct {
	source ports.HallSource
	rater  ports.Rater
	log    *zap.Logger

	mu    sync.RWMutex
	halls []domain.Hall
}

func NewCatalog(source ports.HallSource, rater ports.Rater, log *zap.Logger) *Catalog {
	return &Catalog{source: source, rater: rater, log: log}
}

// Refresh fetches the halls and rates each one. The returned error is
// informational; callers continue with Halls either way.
func (c *Catalog) Refresh(ctx context.Context) (err error) {
	defer obs.Time(ctx, c.log, "catalog.Refresh")(&err)

	halls, err := c.source.FetchHalls(ctx)
	if err != nil {
		c.log.Error("fetch halls failed, keeping previous list",
			zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
		return fmt.Errorf("catalog refresh: %w", err)
	}

	rated := make([]domain.Hall, 0, len(halls))
	for _, h := range halls {
		if c.rater != nil {
			h.Rating = c.rater.Rate(h)
		}
		rated = append(rated, h)
	}

	c.mu.Lock()
	c.halls = rated
	c.mu.Unlock()

	return nil
}

// Halls returns a copy of the current list.
func (c *Catalog) Halls() []domain.Hall {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Hall, len(c.halls))
	copy(out, c.halls)
	return out
}

// Find returns the hall with the given name from the current list.
func (c *Catalog) Find(name string) (domain.Hall, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, h := range c.halls {
		if h.Name == name {
			return h, true
		}
	}
	return domain.Hall{}, false
}
