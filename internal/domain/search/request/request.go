package request

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/search/filter"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
)

// MaxKeywordLength is the maximum number of keyword runes considered.
const MaxKeywordLength = 256

// Params carries the raw inputs of a search request.
type Params struct {
	ServiceType string
	Location    string
	StartDate   string
	EndDate     string
	Keyword     string
	Platform    string
	MinRating   *float64
	MinPrice    *float64
	MaxPrice    *float64
	Specialties []string
	Sort        string
	Reference   *geo.Point
}

// Echo is the part of the request returned verbatim to the caller.
type Echo struct {
	ServiceType string
	Location    string
	StartDate   string
	EndDate     string
}

// Request is a normalised search query. Building one never fails:
// degraded inputs are absorbed as "no constraint".
type Request struct {
	echo             Echo
	keyword          string
	spec             filter.Spec
	explicitCategory bool
	sortBy           strategy.Strategy
	sortRecognized   bool
	reference        *geo.Point
}

// New normalises raw search inputs.
func New(p Params) Request {
	keyword := strings.TrimSpace(p.Keyword)
	if utf8.RuneCountInString(keyword) > MaxKeywordLength {
		keyword = string([]rune(keyword)[:MaxKeywordLength])
	}

	c, explicit := category.Parse(p.ServiceType)
	sortBy, recognized := strategy.Parse(p.Sort)

	var ref *geo.Point
	if p.Reference != nil && geo.ValidateCoordinates(p.Reference.Lat, p.Reference.Lng) {
		r := *p.Reference
		ref = &r
	}

	return Request{
		echo: Echo{
			ServiceType: p.ServiceType,
			Location:    p.Location,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
		},
		keyword: keyword,
		spec: filter.NewSpec(filter.Params{
			Category:    c,
			Location:    p.Location,
			Platform:    p.Platform,
			MinRating:   p.MinRating,
			MinPrice:    p.MinPrice,
			MaxPrice:    p.MaxPrice,
			Keyword:     keyword,
			Specialties: p.Specialties,
		}),
		explicitCategory: explicit,
		sortBy:           sortBy,
		sortRecognized:   recognized || strings.TrimSpace(p.Sort) == "",
		reference:        ref,
	}
}

// Echo returns the caller-facing query echo.
func (r Request) Echo() Echo { return r.echo }

// Keyword returns the trimmed raw keyword (case preserved).
func (r Request) Keyword() string { return r.keyword }

// Spec returns the filter constraints.
func (r Request) Spec() filter.Spec { return r.spec }

// HasExplicitCategory reports whether serviceType named a concrete category.
func (r Request) HasExplicitCategory() bool { return r.explicitCategory }

// Sort returns the ranking strategy.
func (r Request) Sort() strategy.Strategy { return r.sortBy }

// SortRecognized reports false when an unknown sort key was replaced by the default.
func (r Request) SortRecognized() bool { return r.sortRecognized }

// Reference returns the caller-supplied reference point, nil when absent.
func (r Request) Reference() *geo.Point { return r.reference }

// WithReference returns a copy of r using p as the reference point.
func (r Request) WithReference(p geo.Point) Request {
	if !geo.ValidateCoordinates(p.Lat, p.Lng) {
		return r
	}
	r.reference = &p
	return r
}
