package search

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
)

// Rank returns a new slice ordered by s. Ties keep input order.
// Unknown strategies behave like strategy.Recommended.
func Rank(providers []provider.Provider, s strategy.Strategy) []provider.Provider {
	out := slices.Clone(providers)
	if out == nil {
		out = []provider.Provider{}
	}

	var less func(a, b provider.Provider) int
	switch s {
	case strategy.Rating:
		less = func(a, b provider.Provider) int { return cmp.Compare(b.Rating(), a.Rating()) }
	case strategy.PriceLow:
		less = func(a, b provider.Provider) int { return cmp.Compare(a.Price(), b.Price()) }
	case strategy.PriceHigh:
		less = func(a, b provider.Provider) int { return cmp.Compare(b.Price(), a.Price()) }
	case strategy.Reviews:
		less = func(a, b provider.Provider) int { return cmp.Compare(b.Reviews(), a.Reviews()) }
	case strategy.Distance:
		less = compareDistance
	default:
		return out
	}

	slices.SortStableFunc(out, less)
	return out
}

// compareDistance orders nearest first; providers without a distance go last.
func compareDistance(a, b provider.Provider) int {
	da, db := a.Distance(), b.Distance()
	switch {
	case da == nil && db == nil:
		return 0
	case da == nil:
		return 1
	case db == nil:
		return -1
	default:
		return cmp.Compare(*da, *db)
	}
}
