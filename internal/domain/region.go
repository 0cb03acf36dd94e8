package domain

const (
	CloseZoomDelta = 0.05
	WideZoomDelta  = 3.0
)

// Visible map area: a center point and the span shown around it.
type MapRegion struct {
	Center         Coordinates
	LatitudeDelta  float64
	LongitudeDelta float64
}
