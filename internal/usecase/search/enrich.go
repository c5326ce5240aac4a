package search

import (
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Locator resolves a provider location to coordinates.
type Locator func(location string) (geo.Point, bool)

// Enrich returns copies of providers decorated with coordinates and the
// distance in miles from ref. Coordinates come from the record itself,
// falling back to locate. Providers that cannot be placed are returned as is.
func Enrich(providers []provider.Provider, ref geo.Point, locate Locator) []provider.Provider {
	out := make([]provider.Provider, len(providers))
	for i, p := range providers {
		out[i] = p

		var at geo.Point
		if c := p.Coordinates(); c != nil {
			at = *c
		} else if locate != nil {
			loc, ok := locate(p.Location())
			if !ok {
				continue
			}
			at = loc
		} else {
			continue
		}
		out[i] = p.WithDistance(at, geo.Between(ref, at))
	}
	return out
}
