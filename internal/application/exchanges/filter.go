package exchanges

import (
	"strings"

	"github.com/coinlens/cls/internal/domain"
)

// Filter derives the displayed projection of the authoritative exchange list
// for a search query. The match is a case-insensitive substring test on the
// exchange name; an empty query returns the input unchanged. The input slice
// is never mutated.
func Filter(list []domain.Exchange, query string) []domain.Exchange {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}

	needle := strings.ToLower(query)
	filtered := make([]domain.Exchange, 0, len(list))
	for _, exchange := range list {
		if strings.Contains(strings.ToLower(exchange.Name), needle) {
			filtered = append(filtered, exchange)
		}
	}
	return filtered
}
