package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	"github.com/kailas-cloud/neighborly/internal/logger"
)

// Service runs the search pipeline: classify, filter, enrich, rank, aggregate.
type Service struct {
	catalog    Catalog
	classifier Classifier
	geocoder   Geocoder
	platforms  *platform.Registry
	observer   Observer
}

// Option configures a Service.
type Option func(*Service)

// WithGeocoder enables distance enrichment through g.
func WithGeocoder(g Geocoder) Option {
	return func(s *Service) { s.geocoder = g }
}

// WithPlatforms sets the platform registry used for summaries.
func WithPlatforms(r *platform.Registry) Option {
	return func(s *Service) { s.platforms = r }
}

// WithObserver sets the search outcome observer.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// New creates a search service. A nil classifier falls back to KeywordClassifier.
func New(catalog Catalog, classifier Classifier, opts ...Option) *Service {
	if classifier == nil {
		classifier = NewKeywordClassifier()
	}
	s := &Service{catalog: catalog, classifier: classifier}
	for _, opt := range opts {
		opt(s)
	}
	if s.platforms == nil {
		s.platforms = platform.NewRegistry()
	}
	return s
}

// Search executes req against the current catalog snapshot.
// The only error is domain.ErrCatalogUnavailable; degraded inputs never fail.
func (s *Service) Search(ctx context.Context, req request.Request) (result.Set, error) {
	log := logger.FromContext(ctx)

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		log.Error("catalog snapshot failed", zap.Error(err))
		return result.Set{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	spec := req.Spec()
	if !req.HasExplicitCategory() && req.Keyword() != "" {
		if c, ok := s.classify(ctx, req.Keyword()); ok {
			spec = spec.WithCategory(c)
		}
	}
	if !req.SortRecognized() {
		log.Debug("unknown sort strategy, using default", zap.String("sort", string(req.Sort())))
	}

	candidates := Filter(snapshot, spec)

	if ref, ok := s.reference(ctx, req); ok {
		candidates = Enrich(candidates, ref, s.locator(ctx))
	}

	set := Aggregate(Rank(candidates, req.Sort()), s.platforms)
	set.Query = req.Echo()
	set.Category = spec.Category()

	log.Debug("search completed",
		zap.String("category", set.Category.String()),
		zap.String("sort", string(req.Sort())),
		zap.Int("catalog", len(snapshot)),
		zap.Int("total", set.Total),
	)
	if s.observer != nil {
		s.observer.ObserveSearch(string(req.Sort()), set.Category.String(), set.Total)
	}
	return set, nil
}

// Classify exposes the configured classifier. Collaborator failures are
// logged and reported as "no inference".
func (s *Service) Classify(ctx context.Context, keyword string) (category.Category, bool) {
	return s.classify(ctx, keyword)
}

func (s *Service) classify(ctx context.Context, keyword string) (category.Category, bool) {
	c, ok, err := s.classifier.Classify(ctx, keyword)
	if err != nil {
		logger.FromContext(ctx).Warn("classification failed", zap.Error(err))
		return category.All, false
	}
	return c, ok && c.IsValid()
}

// reference resolves the request reference point: explicit coordinates
// first, then the geocoded location.
func (s *Service) reference(ctx context.Context, req request.Request) (geo.Point, bool) {
	if ref := req.Reference(); ref != nil {
		return *ref, true
	}
	loc := req.Echo().Location
	if s.geocoder == nil || loc == "" {
		return geo.Point{}, false
	}
	return s.locator(ctx)(loc)
}

func (s *Service) locator(ctx context.Context) Locator {
	if s.geocoder == nil {
		return nil
	}
	return func(location string) (geo.Point, bool) {
		p, ok, err := s.geocoder.Locate(ctx, location)
		if err != nil {
			logger.FromContext(ctx).Warn("geocoding failed", zap.String("location", location), zap.Error(err))
			return geo.Point{}, false
		}
		return p, ok
	}
}
