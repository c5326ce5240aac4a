package result

import (
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
)

// PlatformSummary is one row per platform present among the results.
type PlatformSummary struct {
	Key   string
	Name  string
	Icon  string
	Color string
	Count int
}

// Set is the assembled response of one search.
type Set struct {
	// Results is the ranked sequence.
	Results []provider.Provider
	// GroupedByPlatform maps platform key to its results in ranked order.
	GroupedByPlatform map[string][]provider.Provider
	// Platforms follows first-occurrence order of the platform key in Results.
	Platforms []PlatformSummary
	Total     int
	Query     request.Echo
	// Category is the effective category: explicit, inferred, or All.
	Category category.Category
}

// Empty returns a Set without results.
func Empty(q request.Echo) Set {
	return Set{
		Results:           []provider.Provider{},
		GroupedByPlatform: map[string][]provider.Provider{},
		Platforms:         []PlatformSummary{},
		Query:             q,
		Category:          category.All,
	}
}
