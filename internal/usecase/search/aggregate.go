package search

import (
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
)

// Aggregate groups ranked providers by platform key and builds one summary
// per platform in first-occurrence order. Display metadata is taken from the
// first provider of each platform, falling back to the registry.
// Query and Category of the returned set are left for the caller.
func Aggregate(ranked []provider.Provider, reg *platform.Registry) result.Set {
	set := result.Set{
		Results:           ranked,
		GroupedByPlatform: make(map[string][]provider.Provider),
		Platforms:         []result.PlatformSummary{},
		Total:             len(ranked),
	}
	if set.Results == nil {
		set.Results = []provider.Provider{}
	}

	index := make(map[string]int)
	for _, p := range ranked {
		key := p.Platform()
		set.GroupedByPlatform[key] = append(set.GroupedByPlatform[key], p)

		if i, ok := index[key]; ok {
			set.Platforms[i].Count++
			continue
		}
		index[key] = len(set.Platforms)
		set.Platforms = append(set.Platforms, summarize(p, reg))
	}
	return set
}

func summarize(p provider.Provider, reg *platform.Registry) result.PlatformSummary {
	var info platform.Info
	if reg != nil {
		info = reg.Lookup(p.Platform())
	} else {
		info = platform.Info{Name: p.Platform(), Icon: platform.DefaultIcon, Color: platform.DefaultColor}
	}
	return result.PlatformSummary{
		Key:   p.Platform(),
		Name:  firstNonEmpty(p.PlatformName(), info.Name),
		Icon:  firstNonEmpty(p.PlatformIcon(), info.Icon),
		Color: firstNonEmpty(p.PlatformColor(), info.Color),
		Count: 1,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
