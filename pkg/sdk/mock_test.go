package neighborly

import (
	"context"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/filter"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
	healthuc "github.com/kailas-cloud/neighborly/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn   func(ctx context.Context, req request.Request) (result.Set, error)
	classifyFn func(ctx context.Context, keyword string) (category.Category, bool)
}

func (m *mockSearchUC) Search(ctx context.Context, req request.Request) (result.Set, error) {
	return m.searchFn(ctx, req)
}

func (m *mockSearchUC) Classify(ctx context.Context, keyword string) (category.Category, bool) {
	return m.classifyFn(ctx, keyword)
}

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn      func(ctx context.Context, spec filter.Spec, sortBy strategy.Strategy) ([]domprov.Provider, error)
	getFn       func(ctx context.Context, id string) (domprov.Provider, error)
	platformsFn func(ctx context.Context) ([]result.PlatformSummary, error)
}

func (m *mockCatalogUC) List(
	ctx context.Context, spec filter.Spec, sortBy strategy.Strategy,
) ([]domprov.Provider, error) {
	return m.listFn(ctx, spec, sortBy)
}

func (m *mockCatalogUC) Get(ctx context.Context, id string) (domprov.Provider, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) Platforms(ctx context.Context) ([]result.PlatformSummary, error) {
	return m.platformsFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- catalogWriter mock ---

type mockWriter struct {
	replaceFn func(ctx context.Context, providers []domprov.Provider) (int, error)
}

func (m *mockWriter) Replace(ctx context.Context, providers []domprov.Provider) (int, error) {
	return m.replaceFn(ctx, providers)
}

// --- helpers ---

func testClient(searchSvc searchUseCase, catalogSvc catalogUseCase) *Client {
	return &Client{
		searchSvc:  searchSvc,
		catalogSvc: catalogSvc,
	}
}

var brooklyn = Point{Lat: 40.6782, Lng: -73.9442}

func sampleProviders() []Provider {
	return []Provider{
		{
			ID: "1", Name: "Happy Paws", Platform: "rover",
			Rating: 4.9, Reviews: 120, Price: 25, PriceUnit: "walk",
			Location: "Brooklyn, NY", Specialties: []string{"Dog Walking"},
			Verified: true, Coordinates: &Point{Lat: brooklyn.Lat, Lng: brooklyn.Lng},
		},
		{
			ID: "2", Name: "Fix-It Felix", Platform: "taskrabbit",
			Rating: 4.6, Reviews: 80, Price: 45, PriceUnit: "hour",
			Location: "Manhattan, NY", Specialties: []string{"Furniture Assembly"},
		},
		{
			ID: "3", Name: "Cat Nanny", Platform: "rover",
			Rating: 4.2, Reviews: 30, Price: 20, PriceUnit: "visit",
			Location: "Queens, NY", Specialties: []string{"Cat Sitting"},
		},
	}
}

func mustDomainProvider(p Provider) domprov.Provider {
	dp, err := domprov.New(providerParams(p))
	if err != nil {
		panic(err)
	}
	return dp
}
