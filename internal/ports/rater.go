package ports

import "boulderhall-service/internal/domain"

// Rater assigns the display rating attached to a hall after each fetch.
type Rater interface {
	Rate(h domain.Hall) float64
}
