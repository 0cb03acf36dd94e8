package domain

import "math"

const earthRadiusKm = 6371.0

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Center of the Netherlands. Used whenever the user's own location is unknown.
var FallbackLocation = Coordinates{Lat: 52.1326, Lon: 5.2913}

// Valid reports whether the coordinate lies within the WGS84 range.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Return great-circle distance to other in kilometers.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	return HaversineKm(c, other)
}

// HaversineKm computes the great-circle distance between two points
// on a sphere with the mean Earth radius (6371 km).
func HaversineKm(from, to Coordinates) float64 {
	lat1 := degreesToRadians(from.Lat)
	lat2 := degreesToRadians(to.Lat)
	deltaLat := degreesToRadians(to.Lat - from.Lat)
	deltaLon := degreesToRadians(to.Lon - from.Lon)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RoundTenth rounds to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
