package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/filter"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
	"github.com/kailas-cloud/neighborly/internal/usecase/search"
)

// Service browses the catalog without keyword classification.
type Service struct {
	reader    Reader
	platforms *platform.Registry
}

// New creates a catalog service. A nil registry uses the built-in platforms.
func New(reader Reader, platforms *platform.Registry) *Service {
	if platforms == nil {
		platforms = platform.NewRegistry()
	}
	return &Service{reader: reader, platforms: platforms}
}

// List returns the providers matching spec, ordered by sortBy.
func (s *Service) List(ctx context.Context, spec filter.Spec, sortBy strategy.Strategy) ([]provider.Provider, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return search.Rank(search.Filter(snapshot, spec), sortBy), nil
}

// Get returns one provider by id.
func (s *Service) Get(ctx context.Context, id string) (provider.Provider, error) {
	p, err := s.reader.Get(ctx, id)
	if err != nil {
		return provider.Provider{}, fmt.Errorf("get provider %q: %w", id, err)
	}
	return p, nil
}

// Platforms lists registered platforms followed by unregistered keys found
// in the catalog, each with its provider count.
func (s *Service) Platforms(ctx context.Context) ([]result.PlatformSummary, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var extra []provider.Provider
	for _, p := range snapshot {
		key := platformKey(p)
		if !s.platforms.Known(key) && counts[key] == 0 {
			extra = append(extra, p)
		}
		counts[key]++
	}

	out := make([]result.PlatformSummary, 0, len(s.platforms.All())+len(extra))
	for _, info := range s.platforms.All() {
		out = append(out, result.PlatformSummary{
			Key: info.Key, Name: info.Name, Icon: info.Icon, Color: info.Color,
			Count: counts[info.Key],
		})
	}
	for _, p := range extra {
		summary := search.Aggregate([]provider.Provider{p}, s.platforms).Platforms[0]
		summary.Count = counts[platformKey(p)]
		out = append(out, summary)
	}
	return out, nil
}

// Categories returns the classifier categories in priority order.
func (s *Service) Categories() []category.Category {
	return category.Ordered()
}

func platformKey(p provider.Provider) string {
	return strings.ToLower(strings.TrimSpace(p.Platform()))
}

func (s *Service) snapshot(ctx context.Context) ([]provider.Provider, error) {
	snapshot, err := s.reader.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return snapshot, nil
}
