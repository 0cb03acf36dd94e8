package api

import (
	"boulderhall-service/internal/adapters/favorites"
	"boulderhall-service/internal/adapters/location"
	"boulderhall-service/internal/adapters/rating"
	"boulderhall-service/internal/adapters/source"
	"boulderhall-service/internal/api/dto"
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"boulderhall-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testHalls = []domain.Hall{
	{Name: "B", City: "Breda", Province: "NorthBrabant", Latitude: 51.59, Longitude: 4.78},
	{Name: "A", City: "Utrecht", Province: "Utrecht", Latitude: 52.09, Longitude: 5.12},
	{Name: "Monk Amsterdam", City: "Amsterdam", Province: "Noord-Holland", Latitude: 52.37, Longitude: 4.89},
	{Name: "Delfts Bouldercentrum", City: "Delft", Province: "Zuid-Holland", Latitude: 52.01, Longitude: 4.36},
}

type fixture struct {
	handler http.Handler
	source  *source.StaticSource
	store   *favorites.MemoryStore
}

func newFixture(t *testing.T, locator ports.LocationProvider) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t)

	src := source.NewStaticSource(testHalls)
	store := favorites.NewMemoryStore()
	favs := services.NewFavorites(store, log)
	catalog := services.NewCatalog(src, rating.Stable{}, log)

	return &fixture{
		handler: NewRouter(catalog, favs, locator, log),
		source:  src,
		store:   store,
	}
}

func (f *fixture) do(t *testing.T, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/health", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestNearbyWithQueryCoordinates(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/halls/nearby?lat=52.1326&lon=5.2913", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[dto.NearbyResponse](t, rec)
	assert.False(t, res.Fallback)
	require.Len(t, res.Halls, 3)
	assert.Equal(t, "A", res.Halls[0].Name)
	require.NotNil(t, res.Halls[0].DistanceKm)
	assert.Equal(t, 12.6, *res.Halls[0].DistanceKm)
	for i := 1; i < len(res.Halls); i++ {
		assert.LessOrEqual(t, *res.Halls[i-1].DistanceKm, *res.Halls[i].DistanceKm)
	}
}

func TestNearbyFallsBackWhenDenied(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/halls/nearby", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dto.NearbyResponse](t, rec)
	assert.True(t, res.Fallback)
	assert.Equal(t, 52.1326, res.Origin.Latitude)
	assert.Equal(t, 5.2913, res.Origin.Longitude)
}

func TestNearbyRejectsBadCoordinates(t *testing.T) {
	f := newFixture(t, location.Denied{})
	for _, target := range []string{
		"/halls/nearby?lat=52",
		"/halls/nearby?lat=abc&lon=5",
		"/halls/nearby?lat=95&lon=5",
	} {
		rec := f.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestNearbyServesStaleListWhenSourceFails(t *testing.T) {
	f := newFixture(t, location.Fixed{Coordinates: domain.FallbackLocation})
	first := decode[dto.NearbyResponse](t, f.do(t, http.MethodGet, "/halls/nearby", nil))

	f.source.Set(nil, errors.New("offline"))
	rec := f.do(t, http.MethodGet, "/halls/nearby", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	second := decode[dto.NearbyResponse](t, rec)
	assert.Equal(t, first.Halls, second.Halls)
}

func TestListSearchAndFavorites(t *testing.T) {
	f := newFixture(t, location.Denied{})

	rec := f.do(t, http.MethodGet, "/halls?q=HOLLAND", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ListHallsResponse](t, rec)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "2 halls found", res.Summary)
	assert.Equal(t, "Monk Amsterdam", res.Halls[0].Name)
	assert.Equal(t, "Delfts Bouldercentrum", res.Halls[1].Name)
	assert.Nil(t, res.Halls[0].DistanceKm)

	rec = f.do(t, http.MethodGet, "/halls?favorites=true", map[string]string{"Accept-Language": "nl"})
	res = decode[dto.ListHallsResponse](t, rec)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, "0 hallen gevonden", res.Summary)
	assert.Equal(t, "Je hebt nog geen favoriete hallen", res.Notice)

	rec = f.do(t, http.MethodPost, "/favorites/Monk%20Amsterdam/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/halls?favorites=1", nil)
	res = decode[dto.ListHallsResponse](t, rec)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Monk Amsterdam", res.Halls[0].Name)
	assert.True(t, res.Halls[0].Favorite)

	rec = f.do(t, http.MethodGet, "/halls?q=zzz", nil)
	res = decode[dto.ListHallsResponse](t, rec)
	assert.Equal(t, "No halls match your search", res.Notice)
}

func TestListRejectsBadFavoritesFlag(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/halls?favorites=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavorite(t *testing.T) {
	f := newFixture(t, location.Denied{})

	rec := f.do(t, http.MethodPost, "/favorites/A/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ToggleFavoriteResponse](t, rec)
	assert.True(t, res.Favorite)
	assert.Equal(t, []string{"A"}, res.Favorites)
	assert.JSONEq(t, `["A"]`, f.store.Raw())

	rec = f.do(t, http.MethodPost, "/favorites/A/toggle", nil)
	res = decode[dto.ToggleFavoriteResponse](t, rec)
	assert.False(t, res.Favorite)
	assert.Empty(t, res.Favorites)
	assert.JSONEq(t, `[]`, f.store.Raw())

	list := decode[dto.FavoritesResponse](t, f.do(t, http.MethodGet, "/favorites", nil))
	assert.Empty(t, list.Favorites)
}

func TestToggleFavoriteSurvivesStoreFailure(t *testing.T) {
	f := newFixture(t, location.Denied{})
	f.store.SaveErr = errors.New("disk full")

	rec := f.do(t, http.MethodPost, "/favorites/B/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[dto.FavoritesResponse](t, f.do(t, http.MethodGet, "/favorites", nil))
	assert.Equal(t, []string{"B"}, list.Favorites)
}

func TestToggleFavoriteMethodNotAllowed(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/favorites/A/toggle", map[string]string{"Accept-Language": "nl"})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"methode niet toegestaan"}`, rec.Body.String())
}

func TestRegion(t *testing.T) {
	f := newFixture(t, location.Denied{})

	res := decode[dto.RegionResponse](t, f.do(t, http.MethodGet, "/map/region?hall=B", nil))
	assert.Equal(t, dto.RegionResponse{Latitude: 51.59, Longitude: 4.78, LatitudeDelta: 0.05, LongitudeDelta: 0.05}, res)

	res = decode[dto.RegionResponse](t, f.do(t, http.MethodGet, "/map/region", nil))
	assert.Equal(t, dto.RegionResponse{Latitude: 52.1326, Longitude: 5.2913, LatitudeDelta: 3, LongitudeDelta: 3}, res)

	res = decode[dto.RegionResponse](t, f.do(t, http.MethodGet, "/map/region?lat=51&lon=4", nil))
	assert.Equal(t, dto.RegionResponse{Latitude: 51, Longitude: 4, LatitudeDelta: 0.05, LongitudeDelta: 0.05}, res)

	rec := f.do(t, http.MethodGet, "/map/region?hall=Nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegionUsesProviderLocation(t *testing.T) {
	home := domain.Coordinates{Lat: 51.44, Lon: 5.48}
	f := newFixture(t, location.Fixed{Coordinates: home})

	res := decode[dto.RegionResponse](t, f.do(t, http.MethodGet, "/map/region", nil))
	assert.Equal(t, dto.RegionResponse{Latitude: 51.44, Longitude: 5.48, LatitudeDelta: 0.05, LongitudeDelta: 0.05}, res)
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, location.Denied{})
	rec := f.do(t, http.MethodGet, "/plans", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}
