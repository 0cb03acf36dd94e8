package handlers

import (
	"boulderhall-service/internal/api/dto"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/i18n"
	"boulderhall-service/internal/platform/obs"
	"boulderhall-service/internal/ports"
	"boulderhall-service/internal/services"
	"net/http"
	"strings"
)

// RegionHandler answers where the map should be centered.
type RegionHandler struct {
	Catalog *services.Catalog
	Locator ports.LocationProvider
}

// Region frames ?hall=NAME when given, else ?lat=&lon=, else the user's
// location from the provider, else the whole country.
func (h *RegionHandler) Region(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoordinates(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, i18n.BadRequest, err.Error())
		return
	}

	var selected *domain.Hall
	if name := strings.TrimSpace(r.URL.Query().Get("hall")); name != "" {
		_ = h.Catalog.Refresh(r.Context())
		hall, ok := h.Catalog.Find(name)
		if !ok {
			writeError(w, r, http.StatusNotFound, i18n.NotFound, name)
			return
		}
		selected = &hall
	}

	user := coords
	if user == nil && selected == nil {
		resolved := services.ResolveLocation(r.Context(), h.Locator, obs.Logger(r.Context()))
		if !resolved.Fallback {
			user = &resolved.Coordinates
		}
	}

	region := services.FrameMap(selected, user)
	writeJSON(w, r, http.StatusOK, dto.RegionResponse{
		Latitude:       region.Center.Lat,
		Longitude:      region.Center.Lon,
		LatitudeDelta:  region.LatitudeDelta,
		LongitudeDelta: region.LongitudeDelta,
	})
}
