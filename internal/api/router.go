package api

import (
	"boulderhall-service/internal/api/handlers"
	"boulderhall-service/internal/ports"
	"boulderhall-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(
	catalog *services.Catalog,
	favorites *services.Favorites,
	locator ports.LocationProvider,
	log *zap.Logger,
) http.Handler {
	hallHandler := &handlers.HallHandler{
		Catalog:   catalog,
		Favorites: favorites,
		Locator:   locator,
	}
	favHandler := &handlers.FavoritesHandler{Favorites: favorites}
	regionHandler := &handlers.RegionHandler{
		Catalog: catalog,
		Locator: locator,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware(log))
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)
	r.Get("/halls", hallHandler.List)
	r.Get("/halls/nearby", hallHandler.Nearby)
	r.Get("/map/region", regionHandler.Region)
	r.Get("/favorites", favHandler.List)
	r.Post("/favorites/{name}/toggle", favHandler.Toggle)

	return r
}
