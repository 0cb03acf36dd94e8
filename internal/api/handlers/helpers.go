package handlers

import (
	"boulderhall-service/internal/api/dto"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/i18n"
	"boulderhall-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).Warn("encode failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// writeError writes {"error": msg} where msg is the localized text for key.
// detail, when non-empty, is appended untranslated.
func writeError(w http.ResponseWriter, r *http.Request, status int, key i18n.Key, detail string) {
	msg := messages(r).Text(key)
	if detail != "" {
		msg += ": " + detail
	}
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func messages(r *http.Request) i18n.Messages {
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}

// MethodNotAllowed and NotFound are installed on the router.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, i18n.MethodNotAllowed, "")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, i18n.NotFound, "")
}

// InternalError answers 500 for requests whose handler failed unexpectedly.
func InternalError(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusInternalServerError, i18n.InternalError, "")
}

var errPartialCoordinates = errors.New("lat and lon must be given together")

// parseCoordinates reads optional lat/lon query parameters. It returns nil
// when neither is present.
func parseCoordinates(r *http.Request) (*domain.Coordinates, error) {
	q := r.URL.Query()
	rawLat := strings.TrimSpace(q.Get("lat"))
	rawLon := strings.TrimSpace(q.Get("lon"))

	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, errPartialCoordinates
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, errors.New("lon must be a number")
	}

	c := domain.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return nil, errors.New("lat must be within [-90, 90] and lon within [-180, 180]")
	}
	return &c, nil
}

func toHallResponse(h domain.Hall, favorites domain.FavoriteSet, withDistance bool) dto.HallResponse {
	res := dto.HallResponse{
		Name:      h.Name,
		City:      h.City,
		Province:  h.Province,
		Latitude:  h.Latitude,
		Longitude: h.Longitude,
		Rating:    h.Rating,
		Favorite:  favorites.Contains(h.Name),
	}
	if withDistance {
		d := h.DistanceKm
		res.DistanceKm = &d
	}
	return res
}
