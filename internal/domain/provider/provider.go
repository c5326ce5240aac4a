package provider

import (
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
)

// MaxRating is the upper bound of a provider rating.
const MaxRating = 5.0

// Params carries the raw fields of a catalog record.
type Params struct {
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
	Coordinates   *geo.Point
}

// Provider is a service-provider catalog record.
// Catalog entries are never mutated: enrichment returns a decorated copy.
type Provider struct {
	id            string
	name          string
	platform      string
	platformName  string
	platformIcon  string
	platformColor string
	rating        float64
	reviews       int
	price         float64
	priceUnit     string
	location      string
	specialties   []string
	verified      bool
	coordinates   *geo.Point
	distance      *float64
}

// New validates a catalog record and creates a Provider.
func New(p Params) (Provider, error) {
	if strings.TrimSpace(p.ID) == "" {
		return Provider{}, fmt.Errorf("%w: id is required", domain.ErrInvalidProvider)
	}
	if strings.TrimSpace(p.Platform) == "" {
		return Provider{}, fmt.Errorf("%w: provider %q: platform is required", domain.ErrInvalidProvider, p.ID)
	}
	if math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > MaxRating {
		return Provider{}, fmt.Errorf("%w: provider %q: rating must be in [0,%g], got %v",
			domain.ErrInvalidProvider, p.ID, MaxRating, p.Rating)
	}
	if p.Reviews < 0 {
		return Provider{}, fmt.Errorf("%w: provider %q: reviews must be non-negative", domain.ErrInvalidProvider, p.ID)
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
		return Provider{}, fmt.Errorf("%w: provider %q: price must be positive, got %v",
			domain.ErrInvalidProvider, p.ID, p.Price)
	}
	if p.Coordinates != nil && !geo.ValidateCoordinates(p.Coordinates.Lat, p.Coordinates.Lng) {
		return Provider{}, fmt.Errorf("%w: provider %q", domain.ErrInvalidCoordinates, p.ID)
	}
	return Reconstruct(p), nil
}

// Reconstruct creates a Provider from trusted storage without validation.
func Reconstruct(p Params) Provider {
	var specialties []string
	if len(p.Specialties) > 0 {
		specialties = make([]string, len(p.Specialties))
		copy(specialties, p.Specialties)
	}
	var coords *geo.Point
	if p.Coordinates != nil {
		c := *p.Coordinates
		coords = &c
	}
	return Provider{
		id:            p.ID,
		name:          p.Name,
		platform:      p.Platform,
		platformName:  p.PlatformName,
		platformIcon:  p.PlatformIcon,
		platformColor: p.PlatformColor,
		rating:        p.Rating,
		reviews:       p.Reviews,
		price:         p.Price,
		priceUnit:     p.PriceUnit,
		location:      p.Location,
		specialties:   specialties,
		verified:      p.Verified,
		coordinates:   coords,
	}
}

// ID returns the catalog identity.
func (p Provider) ID() string { return p.id }

// Name returns the display name.
func (p Provider) Name() string { return p.name }

// Platform returns the machine key of the originating platform.
func (p Provider) Platform() string { return p.platform }

// PlatformName returns the platform display name (may be empty).
func (p Provider) PlatformName() string { return p.platformName }

// PlatformIcon returns the platform icon (may be empty).
func (p Provider) PlatformIcon() string { return p.platformIcon }

// PlatformColor returns the platform brand color (may be empty).
func (p Provider) PlatformColor() string { return p.platformColor }

// Rating returns the average rating in [0,5].
func (p Provider) Rating() float64 { return p.rating }

// Reviews returns the review count.
func (p Provider) Reviews() int { return p.reviews }

// Price returns the price per unit.
func (p Provider) Price() float64 { return p.price }

// PriceUnit returns the price unit label ("hour", "day", "job").
func (p Provider) PriceUnit() string { return p.priceUnit }

// Location returns the free-text location.
func (p Provider) Location() string { return p.location }

// Specialties returns the specialty tags. The slice must not be modified.
func (p Provider) Specialties() []string { return p.specialties }

// Verified reports whether the platform verified the provider.
func (p Provider) Verified() bool { return p.verified }

// Coordinates returns the provider position, nil when unknown.
func (p Provider) Coordinates() *geo.Point { return p.coordinates }

// Distance returns the distance in miles from the request reference point,
// nil when the provider was not enriched.
func (p Provider) Distance() *float64 { return p.distance }

// Params returns the catalog fields of p (without the per-request distance).
func (p Provider) Params() Params {
	return Params{
		ID:            p.id,
		Name:          p.name,
		Platform:      p.platform,
		PlatformName:  p.platformName,
		PlatformIcon:  p.platformIcon,
		PlatformColor: p.platformColor,
		Rating:        p.rating,
		Reviews:       p.reviews,
		Price:         p.price,
		PriceUnit:     p.priceUnit,
		Location:      p.location,
		Specialties:   p.specialties,
		Verified:      p.verified,
		Coordinates:   p.coordinates,
	}
}

// WithDistance returns a copy of p decorated with coordinates and distance.
// The receiver is left untouched.
func (p Provider) WithDistance(coords geo.Point, miles float64) Provider {
	c := coords
	d := miles
	p.coordinates = &c
	p.distance = &d
	return p
}
