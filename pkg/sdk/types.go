package neighborly

import (
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
	"github.com/kailas-cloud/neighborly/internal/repository/geocode"
)

// Category is a service category, e.g. "pet care".
type Category string

// Service category constants.
const (
	CategoryAll           = Category(category.All)
	CategoryPetCare       = Category(category.PetCare)
	CategoryTutoring      = Category(category.Tutoring)
	CategoryHandyman      = Category(category.Handyman)
	CategoryHouseCleaning = Category(category.HouseCleaning)
	CategoryMoving        = Category(category.Moving)
	CategoryChildcare     = Category(category.Childcare)
	CategoryEventPlanning = Category(category.EventPlanning)
)

// Categories returns the service categories in classification priority order.
func Categories() []Category {
	ordered := category.Ordered()
	out := make([]Category, len(ordered))
	for i, c := range ordered {
		out[i] = Category(c)
	}
	return out
}

// SortBy is the ordering of search results.
type SortBy string

// Sort constants.
const (
	SortRecommended = SortBy(strategy.Recommended)
	SortRating      = SortBy(strategy.Rating)
	SortPriceLow    = SortBy(strategy.PriceLow)
	SortPriceHigh   = SortBy(strategy.PriceHigh)
	SortReviews     = SortBy(strategy.Reviews)
	SortDistance    = SortBy(strategy.Distance)
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Place is a gazetteer entry used to resolve free-text locations.
type Place struct {
	Name    string
	Aliases []string
	Lat     float64
	Lng     float64
}

// PlatformInfo is the display metadata of a platform.
type PlatformInfo struct {
	Key   string
	Name  string
	Icon  string
	Color string
}

// Provider is a service provider listed on one platform.
// Distance is set only on search results with a resolved reference point;
// search results carry Coordinates only alongside a Distance.
type Provider struct {
	ID            string
	Name          string
	Platform      string
	PlatformName  string
	PlatformIcon  string
	PlatformColor string
	Rating        float64
	Reviews       int
	Price         float64
	PriceUnit     string
	Location      string
	Specialties   []string
	Verified      bool
	Coordinates   *Point
	Distance      *float64
}

// PlatformSummary is one platform present among search results.
type PlatformSummary struct {
	PlatformInfo
	Count int
}

// Query echoes the caller-facing inputs of a search.
type Query struct {
	ServiceType string
	Location    string
	StartDate   string
	EndDate     string
}

// Result is the outcome of one search.
type Result struct {
	Results           []Provider
	GroupedByPlatform map[string][]Provider
	Platforms         []PlatformSummary
	Total             int
	Query             Query
	// Category is the explicit or inferred category, CategoryAll when none.
	Category Category
}

func providerParams(p Provider) domprov.Params {
	var coords *geo.Point
	if p.Coordinates != nil {
		coords = &geo.Point{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	return domprov.Params{
		ID:            p.ID,
		Name:          p.Name,
		Platform:      p.Platform,
		PlatformName:  p.PlatformName,
		PlatformIcon:  p.PlatformIcon,
		PlatformColor: p.PlatformColor,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Price:         p.Price,
		PriceUnit:     p.PriceUnit,
		Location:      p.Location,
		Specialties:   p.Specialties,
		Verified:      p.Verified,
		Coordinates:   coords,
	}
}

func fromDomainProvider(p domprov.Provider) Provider {
	out := Provider{
		ID:            p.ID(),
		Name:          p.Name(),
		Platform:      p.Platform(),
		PlatformName:  p.PlatformName(),
		PlatformIcon:  p.PlatformIcon(),
		PlatformColor: p.PlatformColor(),
		Rating:        p.Rating(),
		Reviews:       p.Reviews(),
		Price:         p.Price(),
		PriceUnit:     p.PriceUnit(),
		Location:      p.Location(),
		Specialties:   append([]string(nil), p.Specialties()...),
		Verified:      p.Verified(),
	}
	if c := p.Coordinates(); c != nil {
		out.Coordinates = &Point{Lat: c.Lat, Lng: c.Lng}
	}
	if d := p.Distance(); d != nil {
		v := *d
		out.Distance = &v
	}
	return out
}

func fromDomainProviders(ps []domprov.Provider) []Provider {
	out := make([]Provider, len(ps))
	for i, p := range ps {
		out[i] = fromDomainProvider(p)
	}
	return out
}

// searchProviders converts ranked results; coordinates are kept only on
// providers that carry a distance.
func searchProviders(ps []domprov.Provider) []Provider {
	out := fromDomainProviders(ps)
	for i := range out {
		if out[i].Distance == nil {
			out[i].Coordinates = nil
		}
	}
	return out
}

func fromDomainSummary(s result.PlatformSummary) PlatformSummary {
	return PlatformSummary{
		PlatformInfo: PlatformInfo{Key: s.Key, Name: s.Name, Icon: s.Icon, Color: s.Color},
		Count:        s.Count,
	}
}

func fromDomainSet(set result.Set) Result {
	grouped := make(map[string][]Provider, len(set.GroupedByPlatform))
	for key, ps := range set.GroupedByPlatform {
		grouped[key] = searchProviders(ps)
	}
	platforms := make([]PlatformSummary, len(set.Platforms))
	for i, s := range set.Platforms {
		platforms[i] = fromDomainSummary(s)
	}
	return Result{
		Results:           searchProviders(set.Results),
		GroupedByPlatform: grouped,
		Platforms:         platforms,
		Total:             set.Total,
		Query: Query{
			ServiceType: set.Query.ServiceType,
			Location:    set.Query.Location,
			StartDate:   set.Query.StartDate,
			EndDate:     set.Query.EndDate,
		},
		Category: Category(set.Category),
	}
}

func platformInfos(in []PlatformInfo) []platform.Info {
	out := make([]platform.Info, len(in))
	for i, p := range in {
		out[i] = platform.Info{Key: p.Key, Name: p.Name, Icon: p.Icon, Color: p.Color}
	}
	return out
}

func geocodePlaces(in []Place) []geocode.Place {
	out := make([]geocode.Place, len(in))
	for i, p := range in {
		out[i] = geocode.Place{Name: p.Name, Aliases: p.Aliases, Lat: p.Lat, Lng: p.Lng}
	}
	return out
}
