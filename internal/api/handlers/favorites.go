package handlers

import (
	"boulderhall-service/internal/api/dto"
	"boulderhall-service/internal/i18n"
	"boulderhall-service/internal/services"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

type FavoritesHandler struct {
	Favorites *services.Favorites
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.FavoritesResponse{Favorites: h.Favorites.Set().Names()})
}

// Toggle flips the favorite state of the hall named in the path.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	if strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, i18n.BadRequest, "hall name is required")
		return
	}

	isFav, set := h.Favorites.Toggle(r.Context(), name)

	writeJSON(w, r, http.StatusOK, dto.ToggleFavoriteResponse{
		Name:      name,
		Favorite:  isFav,
		Favorites: set.Names(),
	})
}
