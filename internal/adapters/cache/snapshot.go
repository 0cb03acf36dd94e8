// Package cache implements ports.HallSnapshot on SQL databases.
package cache

import (
	"boulderhall-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var errNilDB = errors.New("hall snapshot: db is nil")

// uniqueHalls drops unnamed halls and repeated names, keeping the first.
func uniqueHalls(halls []domain.Hall) []domain.Hall {
	seen := map[string]struct{}{}
	uniq := make([]domain.Hall, 0, len(halls))
	for _, h := range halls {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		h.Name = name
		uniq = append(uniq, h)
	}
	return uniq
}

func scanHalls(rows *sql.Rows) ([]domain.Hall, error) {
	out := []domain.Hall{}
	for rows.Next() {
		var h domain.Hall
		if err := rows.Scan(&h.Name, &h.City, &h.Province, &h.Latitude, &h.Longitude); err != nil {
			return nil, fmt.Errorf("load hall snapshot: scan rows: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load hall snapshot: row iteration: %w", err)
	}
	return out, nil
}
