package chi

import (
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/neighborly/internal/usecase/health"
)

// Provider is the JSON representation of a catalog record.
type Provider struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Platform      string     `json:"platform"`
	PlatformName  string     `json:"platformName,omitempty"`
	PlatformIcon  string     `json:"platformIcon,omitempty"`
	PlatformColor string     `json:"platformColor,omitempty"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	Price         float64    `json:"price"`
	PriceUnit     string     `json:"priceUnit"`
	Location      string     `json:"location"`
	Specialties   []string   `json:"specialties"`
	Verified      bool       `json:"verified"`
	Coordinates   *geo.Point `json:"coordinates,omitempty"`
	Distance      *float64   `json:"distance,omitempty"`
}

// PlatformSummary is one platform row with its result count.
type PlatformSummary struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// QueryEcho echoes the caller query plus the effective category.
type QueryEcho struct {
	ServiceType string `json:"serviceType"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Category    string `json:"category"`
}

// SearchResponse is the body of GET /api/v1/search.
type SearchResponse struct {
	Results           []Provider            `json:"results"`
	GroupedByPlatform map[string][]Provider `json:"groupedByPlatform"`
	Platforms         []PlatformSummary     `json:"platforms"`
	Total             int                   `json:"total"`
	Query             QueryEcho             `json:"query"`
}

// ProviderListResponse is the body of GET /api/v1/providers.
type ProviderListResponse struct {
	Providers []Provider `json:"providers"`
	Total     int        `json:"total"`
}

// PlatformListResponse is the body of GET /api/v1/platforms.
type PlatformListResponse struct {
	Platforms []PlatformSummary `json:"platforms"`
}

// Category describes one classifier category.
type Category struct {
	Key   string   `json:"key"`
	Terms []string `json:"terms"`
}

// CategoryListResponse is the body of GET /api/v1/categories.
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}

// ClassifyResponse is the body of GET /api/v1/classify.
type ClassifyResponse struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Matched  bool   `json:"matched"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// providerToDTO reports coordinates only alongside a distance, i.e. when the
// request resolved a reference point and the provider was enriched.
func providerToDTO(p provider.Provider) Provider {
	specialties := p.Specialties()
	if specialties == nil {
		specialties = []string{}
	}
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
		Specialties:   specialties,
		Verified:      p.Verified(),
		Distance:      p.Distance(),
	}
	if out.Distance != nil {
		out.Coordinates = p.Coordinates()
	}
	return out
}

func providersToDTO(ps []provider.Provider) []Provider {
	out := make([]Provider, len(ps))
	for i, p := range ps {
		out[i] = providerToDTO(p)
	}
	return out
}

func summariesToDTO(ss []result.PlatformSummary) []PlatformSummary {
	out := make([]PlatformSummary, len(ss))
	for i, s := range ss {
		out[i] = PlatformSummary{Key: s.Key, Name: s.Name, Icon: s.Icon, Color: s.Color, Count: s.Count}
	}
	return out
}

func searchResponseFromSet(set result.Set) SearchResponse {
	grouped := make(map[string][]Provider, len(set.GroupedByPlatform))
	for key, group := range set.GroupedByPlatform {
		grouped[key] = providersToDTO(group)
	}
	return SearchResponse{
		Results:           providersToDTO(set.Results),
		GroupedByPlatform: grouped,
		Platforms:         summariesToDTO(set.Platforms),
		Total:             set.Total,
		Query: QueryEcho{
			ServiceType: set.Query.ServiceType,
			Location:    set.Query.Location,
			StartDate:   set.Query.StartDate,
			EndDate:     set.Query.EndDate,
			Category:    set.Category.String(),
		},
	}
}

func categoriesToDTO(cs []category.Category) CategoryListResponse {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category{Key: c.String(), Terms: c.Terms()}
	}
	return CategoryListResponse{Categories: out}
}

func healthToDTO(report healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(report.Status), Checks: checks}
}
