package services

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"boulderhall-service/internal/ports"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Favorites owns the in-memory favorite set and mirrors it to a store.
//
// The set is loaded once by Load. Toggle is the only mutator; each call writes
// the complete set back to the store, in the order the names were added.
// Store failures are logged and otherwise ignored, so the in-memory set stays
// authoritative.
type Favorites struct {
	store ports.FavoritesStore
	log   *zap.Logger

	mu  sync.RWMutex
	set domain.FavoriteSet
	// Persisted order: oldest favorite first.
	order []string
}

func NewFavorites(store ports.FavoritesStore, log *zap.Logger) *Favorites {
	return &Favorites{store: store, log: log, set: domain.NewFavoriteSet()}
}

// Load replaces the in-memory set with the persisted one. On a read failure
// the current set is kept.
func (f *Favorites) Load(ctx context.Context) (err error) {
	defer obs.Time(ctx, f.log, "favorites.Load")(&err)

	names, err := f.store.Load(ctx)
	if err != nil {
		f.log.Error("load favorites failed", zap.Error(err))
		return err
	}

	set := domain.NewFavoriteSet()
	order := make([]string, 0, len(names))
	for _, n := range names {
		if !set.Contains(n) {
			set[n] = struct{}{}
			order = append(order, n)
		}
	}

	f.mu.Lock()
	f.set = set
	f.order = order
	f.mu.Unlock()

	f.log.Info("favorites loaded", zap.Int("count", len(names)))
	return nil
}

// Set returns a copy of the current favorites.
func (f *Favorites) Set() domain.FavoriteSet {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return domain.NewFavoriteSet(f.set.Names()...)
}

// Toggle flips name's membership, persists the full set and reports whether
// name is a favorite afterwards.
func (f *Favorites) Toggle(ctx context.Context, name string) (bool, domain.FavoriteSet) {
	f.mu.Lock()
	f.set = domain.ToggleFavorite(f.set, name)
	f.order = domain.ToggleFavoriteOrder(f.order, name)
	snapshot := domain.NewFavoriteSet(f.order...)
	// Writing under the lock keeps store writes in toggle order.
	f.persist(ctx, f.order)
	f.mu.Unlock()

	return snapshot.Contains(name), snapshot
}

func (f *Favorites) persist(ctx context.Context, names []string) {
	var err error
	defer obs.Time(ctx, f.log, "favorites.Save")(&err)

	if err = f.store.Save(ctx, names); err != nil {
		f.log.Error("save favorites failed", zap.Int("count", len(names)), zap.Error(err))
	}
}
