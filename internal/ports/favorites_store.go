package ports

import "context"

// Key under which the favorite hall names are persisted.
const FavoritesKey = "favorite-halls"

// Port: persistence for the user's favorite hall names.
// Save always receives the complete set; stores overwrite, never merge.
type FavoritesStore interface {
	// Return the persisted names. A missing key yields an empty slice.
	Load(ctx context.Context) ([]string, error)
	// Replace the persisted names with names.
	Save(ctx context.Context, names []string) error
}
