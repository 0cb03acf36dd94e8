package services

import (
	"boulderhall-service/internal/domain"
	"strings"
)

// FilterHalls derives the visible subset of halls for the list view.
//
// With onlyFavorites set, halls not in favorites are dropped first. A non-blank
// query then keeps halls whose name, city or province contains it, compared in
// lower case. Surrounding spaces only decide whether the query is blank; the
// match uses the query as typed. Input order is preserved.
func FilterHalls(
	halls []domain.Hall,
	favorites domain.FavoriteSet,
	query string,
	onlyFavorites bool,
) []domain.Hall {
	filterQuery := strings.TrimSpace(query) != ""
	q := strings.ToLower(query)

	out := make([]domain.Hall, 0, len(halls))
	for _, h := range halls {
		if onlyFavorites && !favorites.Contains(h.Name) {
			continue
		}
		if filterQuery && !matchesQuery(h, q) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func matchesQuery(h domain.Hall, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(h.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(h.City), lowerQuery) ||
		strings.Contains(strings.ToLower(h.Province), lowerQuery)
}
