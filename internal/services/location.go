package services

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"context"
	"errors"

	"go.uber.org/zap"
)

// Outcome of location acquisition. Fallback is set when Coordinates is
// domain.FallbackLocation because the provider could not be used.
type ResolvedLocation struct {
	Coordinates domain.Coordinates
	Fallback    bool
}

// ResolveLocation asks provider for the user's position. Permission denial,
// lookup errors and out of range results all resolve to the fallback location;
// this function never fails.
func ResolveLocation(ctx context.Context, provider ports.LocationProvider, log *zap.Logger) ResolvedLocation {
	fallback := ResolvedLocation{Coordinates: domain.FallbackLocation, Fallback: true}

	if provider == nil {
		return fallback
	}

	loc, err := provider.CurrentLocation(ctx)
	switch {
	case errors.Is(err, ports.ErrPermissionDenied):
		log.Info("location permission not granted, using fallback")
		return fallback
	case err != nil:
		log.Warn("location lookup failed, using fallback", zap.Error(err))
		return fallback
	case !loc.Valid():
		log.Warn("location out of range, using fallback",
			zap.Float64("lat", loc.Lat), zap.Float64("lon", loc.Lon))
		return fallback
	}

	return ResolvedLocation{Coordinates: loc}
}
