package provider

import (
	"context"
	"path"
	"sort"
	"testing"

	"github.com/kailas-cloud/neighborly/internal/db"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	pingFn         func(ctx context.Context) error
	hsetMultiFn    func(ctx context.Context, items []db.HashSetItem) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hsetMultiFn != nil {
		return m.hsetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

// hashBackedStore wires a mockStore to an in-memory map of hashes.
// Writes merge fields into existing hashes like HSET.
// Scan returns keys in reverse lexical order to expose any reliance on scan order.
func hashBackedStore(data map[string]map[string]string) *mockStore {
	return &mockStore{
		hsetMultiFn: func(_ context.Context, items []db.HashSetItem) error {
			for _, it := range items {
				h, ok := data[it.Key]
				if !ok {
					h = make(map[string]string, len(it.Fields))
					data[it.Key] = h
				}
				for f, v := range it.Fields {
					h[f] = v
				}
			}
			return nil
		},
		hgetAllFn: func(_ context.Context, key string) (map[string]string, error) {
			if m, ok := data[key]; ok {
				return m, nil
			}
			return map[string]string{}, nil
		},
		hgetAllMultiFn: func(_ context.Context, keys []string) ([]map[string]string, error) {
			out := make([]map[string]string, len(keys))
			for i, k := range keys {
				out[i] = data[k]
			}
			return out, nil
		},
		delFn: func(_ context.Context, key string) error {
			delete(data, key)
			return nil
		},
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			var keys []string
			for k := range data {
				if ok, _ := path.Match(pattern, k); ok {
					keys = append(keys, k)
				}
			}
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
			return keys, nil
		},
	}
}

func mustProvider(t *testing.T, p domprov.Params) domprov.Provider {
	t.Helper()
	pr, err := domprov.New(p)
	if err != nil {
		t.Fatalf("new provider %q: %v", p.ID, err)
	}
	return pr
}

func sampleProviders(t *testing.T) []domprov.Provider {
	t.Helper()
	return []domprov.Provider{
		mustProvider(t, domprov.Params{
			ID: "9", Name: "Sarah's Pet Care", Platform: "rover",
			Rating: 4.9, Reviews: 127, Price: 35, PriceUnit: "hour",
			Location: "Jersey City, NJ", Specialties: []string{"Dog walking", "Pet sitting"},
			Verified: true, Coordinates: &geo.Point{Lat: 40.7178, Lng: -74.0431},
		}),
		mustProvider(t, domprov.Params{
			ID: "10", Name: "Mike the Fixer", Platform: "taskrabbit", PlatformName: "TaskRabbit",
			Rating: 4.7, Reviews: 89, Price: 45, PriceUnit: "hour",
			Location: "New York, NY", Specialties: []string{"Handyman"},
		}),
		mustProvider(t, domprov.Params{
			ID: "2", Name: "Priya Sharma", Platform: "wyzant",
			Rating: 5, Reviews: 210, Price: 60.5, PriceUnit: "hour",
			Location: "Hoboken, NJ",
		}),
	}
}

func ids(ps []domprov.Provider) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID()
	}
	return out
}
