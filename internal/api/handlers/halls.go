package handlers

import (
	"boulderhall-service/internal/adapters/location"
	"boulderhall-service/internal/api/dto"
	"boulderhall-service/internal/i18n"
	"boulderhall-service/internal/platform/obs"
	"boulderhall-service/internal/ports"
	"boulderhall-service/internal/services"
	"net/http"
	"strconv"
	"strings"
)

// HallHandler serves the list and nearby views of the hall catalog.
type HallHandler struct {
	Catalog   *services.Catalog
	Favorites *services.Favorites
	Locator   ports.LocationProvider
}

// List returns the catalog filtered by ?q= and ?favorites=true.
func (h *HallHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")

	onlyFavorites := false
	if raw := strings.TrimSpace(q.Get("favorites")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, i18n.BadRequest, "favorites must be a boolean")
			return
		}
		onlyFavorites = v
	}

	favs := h.Favorites.Set()
	halls := services.ListHalls(r.Context(), h.Catalog, favs, query, onlyFavorites)

	msgs := messages(r)
	res := dto.ListHallsResponse{
		Count:   len(halls),
		Summary: msgs.Text(i18n.HallsFound, len(halls)),
		Halls:   make([]dto.HallResponse, 0, len(halls)),
	}
	switch {
	case onlyFavorites && len(halls) == 0:
		res.Notice = msgs.Text(i18n.NoFavorites)
	case strings.TrimSpace(query) != "" && len(halls) == 0:
		res.Notice = msgs.Text(i18n.NoResults)
	}

	for _, hall := range halls {
		res.Halls = append(res.Halls, toHallResponse(hall, favs, false))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearby returns the closest halls to ?lat=&lon=, or to the configured
// location provider's position when no coordinates are given.
func (h *HallHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoordinates(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, i18n.BadRequest, err.Error())
		return
	}

	locator := h.Locator
	if coords != nil {
		locator = location.Fixed{Coordinates: *coords}
	}

	result := services.NearbyHalls(r.Context(), h.Catalog, locator, obs.Logger(r.Context()))
	favs := h.Favorites.Set()

	res := dto.NearbyResponse{
		Origin: dto.CoordinatesResponse{
			Latitude:  result.Origin.Coordinates.Lat,
			Longitude: result.Origin.Coordinates.Lon,
		},
		Fallback: result.Origin.Fallback,
		Halls:    make([]dto.HallResponse, 0, len(result.Halls)),
	}
	for _, hall := range result.Halls {
		res.Halls = append(res.Halls, toHallResponse(hall, favs, true))
	}

	writeJSON(w, r, http.StatusOK, res)
}
