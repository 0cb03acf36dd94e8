package dto

type HallResponse struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Rating     float64  `json:"rating"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Favorite   bool     `json:"favorite"`
}

type ListHallsResponse struct {
	Count   int            `json:"count"`
	Summary string         `json:"summary"`
	Notice  string         `json:"notice,omitempty"`
	Halls   []HallResponse `json:"halls"`
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type NearbyResponse struct {
	Origin   CoordinatesResponse `json:"origin"`
	Fallback bool                `json:"fallback"`
	Halls    []HallResponse      `json:"halls"`
}
