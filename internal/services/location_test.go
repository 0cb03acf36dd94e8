package services

import (
	"boulderhall-service/internal/adapters/location"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type failingLocator struct{ err error }

func (f failingLocator) CurrentLocation(context.Context) (domain.Coordinates, error) {
	return domain.Coordinates{}, f.err
}

func TestResolveLocationGranted(t *testing.T) {
	want := domain.Coordinates{Lat: 51.59, Lon: 4.78}
	got := ResolveLocation(context.Background(), location.Fixed{Coordinates: want}, zaptest.NewLogger(t))

	assert.Equal(t, want, got.Coordinates)
	assert.False(t, got.Fallback)
}

func TestResolveLocationFallbacks(t *testing.T) {
	cases := map[string]ports.LocationProvider{
		"denied":       location.Denied{},
		"lookup error": failingLocator{err: errors.New("gps off")},
		"out of range": location.Fixed{Coordinates: domain.Coordinates{Lat: 120, Lon: 0}},
	}

	for name, provider := range cases {
		t.Run(name, func(t *testing.T) {
			got := ResolveLocation(context.Background(), provider, zaptest.NewLogger(t))
			assert.True(t, got.Fallback)
			assert.Equal(t, domain.Coordinates{Lat: 52.1326, Lon: 5.2913}, got.Coordinates)
		})
	}
}

func TestResolveLocationNilProvider(t *testing.T) {
	got := ResolveLocation(context.Background(), nil, zaptest.NewLogger(t))
	assert.True(t, got.Fallback)
	assert.Equal(t, domain.FallbackLocation, got.Coordinates)
}
