package services

import (
	"boulderhall-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameMapSelectedHallWins(t *testing.T) {
	user := domain.Coordinates{Lat: 51.0, Lon: 4.0}
	got := FrameMap(&hallB, &user)

	assert.Equal(t, domain.Coordinates{Lat: 51.59, Lon: 4.78}, got.Center)
	assert.Equal(t, 0.05, got.LatitudeDelta)
	assert.Equal(t, 0.05, got.LongitudeDelta)
}

func TestFrameMapUserLocation(t *testing.T) {
	user := domain.Coordinates{Lat: 51.0, Lon: 4.0}
	got := FrameMap(nil, &user)

	assert.Equal(t, user, got.Center)
	assert.Equal(t, domain.CloseZoomDelta, got.LatitudeDelta)
}

func TestFrameMapFallback(t *testing.T) {
	got := FrameMap(nil, nil)

	assert.Equal(t, domain.FallbackLocation, got.Center)
	assert.Equal(t, 3.0, got.LatitudeDelta)
	assert.Equal(t, 3.0, got.LongitudeDelta)
}
