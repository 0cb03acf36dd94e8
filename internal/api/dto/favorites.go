package dto

type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

type ToggleFavoriteResponse struct {
	Name      string   `json:"name"`
	Favorite  bool     `json:"favorite"`
	Favorites []string `json:"favorites"`
}
