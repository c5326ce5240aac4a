package neighborly

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
)

// SearchBuilder is a fluent builder for provider searches.
// Unset constraints do not filter; invalid inputs are ignored.
type SearchBuilder struct {
	svc searchUseCase
	obs *observer

	params request.Params
}

// Keyword sets the free-text keyword. Without an explicit category it is
// also used to infer one.
func (b *SearchBuilder) Keyword(kw string) *SearchBuilder {
	b.params.Keyword = kw
	return b
}

// Category restricts results to one service category.
func (b *SearchBuilder) Category(c Category) *SearchBuilder {
	b.params.ServiceType = string(c)
	return b
}

// Location keeps providers whose location shares text with loc and,
// with a geocoder configured, computes distances from it.
func (b *SearchBuilder) Location(loc string) *SearchBuilder {
	b.params.Location = loc
	return b
}

// Near sets an explicit reference point for distances. It takes precedence
// over the geocoded location.
func (b *SearchBuilder) Near(lat, lng float64) *SearchBuilder {
	b.params.Reference = &geo.Point{Lat: lat, Lng: lng}
	return b
}

// Dates are echoed back in the result; availability is not checked.
func (b *SearchBuilder) Dates(start, end string) *SearchBuilder {
	b.params.StartDate = start
	b.params.EndDate = end
	return b
}

// Platform restricts results to one platform key, e.g. "rover".
func (b *SearchBuilder) Platform(key string) *SearchBuilder {
	b.params.Platform = key
	return b
}

// MinRating keeps providers rated at least r.
func (b *SearchBuilder) MinRating(r float64) *SearchBuilder {
	b.params.MinRating = &r
	return b
}

// PriceRange keeps providers priced within [lo, hi]. A zero bound is open.
func (b *SearchBuilder) PriceRange(lo, hi float64) *SearchBuilder {
	b.params.MinPrice, b.params.MaxPrice = nil, nil
	if lo > 0 {
		b.params.MinPrice = &lo
	}
	if hi > 0 {
		b.params.MaxPrice = &hi
	}
	return b
}

// Specialties keeps providers offering at least one of tags.
func (b *SearchBuilder) Specialties(tags ...string) *SearchBuilder {
	b.params.Specialties = append(b.params.Specialties, tags...)
	return b
}

// SortBy sets the result ordering. Default: SortRecommended.
func (b *SearchBuilder) SortBy(s SortBy) *SearchBuilder {
	b.params.Sort = string(s)
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (_ Result, err error) {
	start := time.Now()
	total := 0
	defer func() { b.obs.observe("search", start, err, "total", total) }()

	set, err := b.svc.Search(ctx, request.New(b.params))
	if err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}
	total = set.Total
	b.obs.results(total)
	return fromDomainSet(set), nil
}
