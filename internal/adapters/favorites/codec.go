// Package favorites implements ports.FavoritesStore. Every store keeps the
// whole set as one JSON array of names under ports.FavoritesKey.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errStoreClosed = errors.New("favorites store: db is nil")

func encodeNames(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}
	return b, nil
}

func decodeNames(b []byte) ([]string, error) {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
