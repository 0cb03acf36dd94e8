// Package source implements ports.HallSource over HTTP, local files and S3.
package source

import (
	"boulderhall-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Wire shape of one entry in boulderhalls.json.
type hallRecord struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Province  string  `json:"province"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DecodeHalls parses a JSON array of hall records and normalizes it.
//
// Text fields are trimmed. Records without a name are dropped, and since the
// name is the hall's key only the first record per name is kept.
func DecodeHalls(r io.Reader) ([]domain.Hall, error) {
	var records []hallRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode halls: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	halls := make([]domain.Hall, 0, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		halls = append(halls, domain.Hall{
			Name:      name,
			City:      strings.TrimSpace(rec.City),
			Province:  strings.TrimSpace(rec.Province),
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	}

	return halls, nil
}
