// Package location implements ports.LocationProvider.
package location

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"context"
)

// Fixed always reports the same coordinate. The server uses it both for a
// configured home location and for coordinates supplied on a request.
type Fixed struct {
	Coordinates domain.Coordinates
}

func (f Fixed) CurrentLocation(ctx context.Context) (domain.Coordinates, error) {
	return f.Coordinates, nil
}

// Denied behaves like a device where the user refused location access.
type Denied struct{}

func (Denied) CurrentLocation(ctx context.Context) (domain.Coordinates, error) {
	return domain.Coordinates{}, ports.ErrPermissionDenied
}
