package services

import "boulderhall-service/internal/domain"

// FrameMap picks the map area to show. A selected hall wins over the user's
// location; with neither, the map shows the whole country around the fallback.
func FrameMap(selected *domain.Hall, user *domain.Coordinates) domain.MapRegion {
	switch {
	case selected != nil:
		return domain.MapRegion{
			Center:         selected.Coordinates(),
			LatitudeDelta:  domain.CloseZoomDelta,
			LongitudeDelta: domain.CloseZoomDelta,
		}
	case user != nil:
		return domain.MapRegion{
			Center:         *user,
			LatitudeDelta:  domain.CloseZoomDelta,
			LongitudeDelta: domain.CloseZoomDelta,
		}
	default:
		return domain.MapRegion{
			Center:         domain.FallbackLocation,
			LatitudeDelta:  domain.WideZoomDelta,
			LongitudeDelta: domain.WideZoomDelta,
		}
	}
}
