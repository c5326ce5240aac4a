package strategy

import "strings"

// Strategy is the result ordering of a search.
type Strategy string

// Sort strategy constants.
const (
	// Recommended keeps catalog order.
	Recommended Strategy = "recommended"
	Rating      Strategy = "rating"
	PriceLow    Strategy = "price-low"
	PriceHigh   Strategy = "price-high"
	Reviews     Strategy = "reviews"
	// Distance orders by ascending distance, providers without one last.
	Distance Strategy = "distance"
)

// IsValid checks if the strategy is one of the supported values.
func (s Strategy) IsValid() bool {
	switch s {
	case Recommended, Rating, PriceLow, PriceHigh, Reviews, Distance:
		return true
	}
	return false
}

// Parse normalises a raw sort key. Unknown or empty keys fall back to Recommended
// and report false.
func Parse(raw string) (Strategy, bool) {
	s := Strategy(strings.ToLower(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s, true
	}
	return Recommended, false
}
