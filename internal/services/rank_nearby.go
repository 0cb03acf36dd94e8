package services

import (
	"boulderhall-service/internal/domain"
	"cmp"
	"slices"
)

// Number of halls kept by RankNearby.
const NearbyLimit = 3

// RankNearby returns the halls closest to origin, nearest first.
//
// Each hall gets its great-circle distance attached, rounded to one decimal.
// Ordering compares the rounded distance only and the sort is stable, so halls
// at equal rounded distance keep their input order. At most NearbyLimit halls
// are returned. The input slice is not modified.
func RankNearby(halls []domain.Hall, origin domain.Coordinates) []domain.Hall {
	ranked := make([]domain.Hall, 0, len(halls))
	for _, h := range halls {
		h.DistanceKm = domain.RoundTenth(domain.HaversineKm(origin, h.Coordinates()))
		ranked = append(ranked, h)
	}

	slices.SortStableFunc(ranked, func(a, b domain.Hall) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	if len(ranked) > NearbyLimit {
		ranked = ranked[:NearbyLimit]
	}
	return ranked
}
