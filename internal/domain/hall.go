package domain

// Represents a single climbing gym from the remote data source.
// Name is the unique key. Distance and Rating are derived locally
// after each fetch and are never persisted.
type Hall struct {
	Name      string
	City      string
	Province  string
	Latitude  float64
	Longitude float64

	DistanceKm float64
	Rating     float64
}

func (h Hall) Coordinates() Coordinates {
	return Coordinates{Lat: h.Latitude, Lon: h.Longitude}
}
