package search

import (
	"context"
	"testing"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// --- Mocks ---

type mockCatalog struct {
	providers []provider.Provider
	err       error
	calls     int
}

func (m *mockCatalog) Snapshot(_ context.Context) ([]provider.Provider, error) {
	m.calls++
	return m.providers, m.err
}

type mockClassifier struct {
	category category.Category
	ok       bool
	err      error
	called   bool
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (category.Category, bool, error) {
	m.called = true
	return m.category, m.ok, m.err
}

type mockGeocoder struct {
	points map[string]geo.Point
	err    error
}

func (m *mockGeocoder) Locate(_ context.Context, location string) (geo.Point, bool, error) {
	if m.err != nil {
		return geo.Point{}, false, m.err
	}
	p, ok := m.points[location]
	return p, ok, nil
}

type mockObserver struct {
	strategy string
	category string
	results  int
	calls    int
}

func (m *mockObserver) ObserveSearch(strategy, category string, results int) {
	m.calls++
	m.strategy, m.category, m.results = strategy, category, results
}

// --- Fixtures ---

func mustProvider(t *testing.T, p provider.Params) provider.Provider {
	t.Helper()
	pr, err := provider.New(p)
	if err != nil {
		t.Fatalf("provider.New(%q): %v", p.ID, err)
	}
	return pr
}

// testCatalog is a small mixed catalog. Ratings, prices and reviews are
// chosen so every ranking strategy yields a distinct order.
func testCatalog(t *testing.T) []provider.Provider {
	t.Helper()
	return []provider.Provider{
		mustProvider(t, provider.Params{
			ID: "1", Name: "Sarah's Pet Care", Platform: "rover",
			Rating: 4.9, Reviews: 127, Price: 35, PriceUnit: "hour",
			Location: "Jersey City, NJ", Specialties: []string{"Dog walking", "Pet sitting"},
		}),
		mustProvider(t, provider.Params{
			ID: "2", Name: "Mike the Fixer", Platform: "taskrabbit",
			Rating: 4.7, Reviews: 89, Price: 45, PriceUnit: "hour",
			Location: "New York, NY", Specialties: []string{"Handyman", "Furniture assembly"},
		}),
		mustProvider(t, provider.Params{
			ID: "3", Name: "Priya Sharma", Platform: "wyzant",
			Rating: 5.0, Reviews: 210, Price: 60, PriceUnit: "hour",
			Location: "Hoboken, NJ", Specialties: []string{"Math tutoring", "SAT prep"},
		}),
		mustProvider(t, provider.Params{
			ID: "4", Name: "Paws & Claws", Platform: "rover",
			Rating: 4.9, Reviews: 54, Price: 25, PriceUnit: "day",
			Location: "Brooklyn, NY", Specialties: []string{"Cat sitting", "Boarding"},
		}),
		mustProvider(t, provider.Params{
			ID: "5", Name: "Sparkle Cleaners", Platform: "thumbtack",
			Rating: 4.5, Reviews: 301, Price: 120, PriceUnit: "job",
			Location: "New York, NY", Specialties: []string{"Deep cleaning", "Move-out cleaning"},
		}),
	}
}

func ids(ps []provider.Provider) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID()
	}
	return out
}

func assertIDs(t *testing.T, got []provider.Provider, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got ids %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got ids %v, want %v", g, want)
		}
	}
}

func ptr(v float64) *float64 { return &v }
