package search

import (
	"context"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Catalog supplies a read-only snapshot of the provider catalog.
// Callers must not mutate the returned slice.
type Catalog interface {
	Snapshot(ctx context.Context) ([]provider.Provider, error)
}

// Classifier infers a category from a free-text keyword.
// ok is false when nothing matched; err is reserved for collaborator failures.
type Classifier interface {
	Classify(ctx context.Context, keyword string) (c category.Category, ok bool, err error)
}

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Locate(ctx context.Context, location string) (p geo.Point, ok bool, err error)
}

// Observer records search outcomes. A nil Observer is allowed.
type Observer interface {
	ObserveSearch(strategy, category string, results int)
}
