package ports

import (
	"boulderhall-service/internal/domain"
	"context"
	"errors"
)

// ErrPermissionDenied is returned when the user has not granted location access.
var ErrPermissionDenied = errors.New("location permission denied")

// Contract for looking up the user's current position.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (domain.Coordinates, error)
}
