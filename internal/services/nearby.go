package services

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"context"

	"go.uber.org/zap"
)

type NearbyResult struct {
	Origin ResolvedLocation
	Halls  []domain.Hall
}

// NearbyHalls resolves the user's location, refreshes the catalog and ranks
// the closest halls. Ranking only runs once an origin is known, and a failed
// refresh ranks whatever list the catalog already held.
func NearbyHalls(
	ctx context.Context,
	catalog *Catalog,
	provider ports.LocationProvider,
	log *zap.Logger,
) NearbyResult {
	origin := ResolveLocation(ctx, provider, log)

	// Refresh errors are already logged by the catalog.
	_ = catalog.Refresh(ctx)

	return NearbyResult{
		Origin: origin,
		Halls:  RankNearby(catalog.Halls(), origin.Coordinates),
	}
}

// ListHalls refreshes the catalog and applies the list filter.
func ListHalls(
	ctx context.Context,
	catalog *Catalog,
	favorites domain.FavoriteSet,
	query string,
	onlyFavorites bool,
) []domain.Hall {
	_ = catalog.Refresh(ctx)
	return FilterHalls(catalog.Halls(), favorites, query, onlyFavorites)
}
