// Package provider implements the provider catalog: a YAML seed format,
// an immutable in-memory snapshot and a Redis/Valkey hash-backed store.
package provider

import (
	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Record is the serialized form of a catalog entry in seed files.
type Record struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Platform      string     `yaml:"platform"`
	PlatformName  string     `yaml:"platform_name,omitempty"`
	PlatformIcon  string     `yaml:"platform_icon,omitempty"`
	PlatformColor string     `yaml:"platform_color,omitempty"`
	Rating        float64    `yaml:"rating"`
	Reviews       int        `yaml:"reviews"`
	Price         float64    `yaml:"price"`
	PriceUnit     string     `yaml:"price_unit"`
	Location      string     `yaml:"location"`
	Specialties   []string   `yaml:"specialties"`
	Verified      bool       `yaml:"verified"`
	Coordinates   *geo.Point `yaml:"coordinates,omitempty"`
}

// Params converts the record to domain parameters.
func (r Record) Params() domprov.Params {
	return domprov.Params{
		ID:            r.ID,
		Name:          r.Name,
		Platform:      r.Platform,
		PlatformName:  r.PlatformName,
		PlatformIcon:  r.PlatformIcon,
		PlatformColor: r.PlatformColor,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Price:         r.Price,
		PriceUnit:     r.PriceUnit,
		Location:      r.Location,
		Specialties:   r.Specialties,
		Verified:      r.Verified,
		Coordinates:   r.Coordinates,
	}
}

// RecordOf converts a domain provider to its serialized form.
func RecordOf(p domprov.Provider) Record {
	pp := p.Params()
	return Record{
		ID:            pp.ID,
		Name:          pp.Name,
		Platform:      pp.Platform,
		PlatformName:  pp.PlatformName,
		PlatformIcon:  pp.PlatformIcon,
		PlatformColor: pp.PlatformColor,
		Rating:        pp.Rating,
		Reviews:       pp.Reviews,
		Price:         pp.Price,
		PriceUnit:     pp.PriceUnit,
		Location:      pp.Location,
		Specialties:   pp.Specialties,
		Verified:      pp.Verified,
		Coordinates:   pp.Coordinates,
	}
}
