package provider

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Hash field names.
const (
	fieldID            = "id"
	fieldName          = "name"
	fieldPlatform      = "platform"
	fieldPlatformName  = "platform_name"
	fieldPlatformIcon  = "platform_icon"
	fieldPlatformColor = "platform_color"
	fieldRating        = "rating"
	fieldReviews       = "reviews"
	fieldPrice         = "price"
	fieldPriceUnit     = "price_unit"
	fieldLocation      = "location"
	fieldSpecialties   = "specialties"
	fieldVerified      = "verified"
	fieldLat           = "lat"
	fieldLng           = "lng"
	fieldPosition      = "position"
)

func providerToHash(p domprov.Provider, position int) (map[string]string, error) {
	specialties := p.Specialties()
	if specialties == nil {
		specialties = []string{}
	}
	specJSON, err := json.Marshal(specialties)
	if err != nil {
		return nil, fmt.Errorf("marshal specialties: %w", err)
	}

	m := map[string]string{
		fieldID:            p.ID(),
		fieldName:          p.Name(),
		fieldPlatform:      p.Platform(),
		fieldPlatformName:  p.PlatformName(),
		fieldPlatformIcon:  p.PlatformIcon(),
		fieldPlatformColor: p.PlatformColor(),
		fieldRating:        strconv.FormatFloat(p.Rating(), 'f', -1, 64),
		fieldReviews:       strconv.Itoa(p.Reviews()),
		fieldPrice:         strconv.FormatFloat(p.Price(), 'f', -1, 64),
		fieldPriceUnit:     p.PriceUnit(),
		fieldLocation:      p.Location(),
		fieldSpecialties:   string(specJSON),
		fieldVerified:      strconv.FormatBool(p.Verified()),
		fieldPosition:      strconv.Itoa(position),
	}
	if c := p.Coordinates(); c != nil {
		m[fieldLat] = strconv.FormatFloat(c.Lat, 'f', -1, 64)
		m[fieldLng] = strconv.FormatFloat(c.Lng, 'f', -1, 64)
	}
	return m, nil
}

// providerFromHash parses a stored record and returns it with its catalog position.
func providerFromHash(m map[string]string) (domprov.Provider, int, error) {
	rating, err := strconv.ParseFloat(m[fieldRating], 64)
	if err != nil {
		return domprov.Provider{}, 0, fmt.Errorf("parse rating: %w", err)
	}
	reviews, err := strconv.Atoi(m[fieldReviews])
	if err != nil {
		return domprov.Provider{}, 0, fmt.Errorf("parse reviews: %w", err)
	}
	price, err := strconv.ParseFloat(m[fieldPrice], 64)
	if err != nil {
		return domprov.Provider{}, 0, fmt.Errorf("parse price: %w", err)
	}

	var verified bool
	if raw := m[fieldVerified]; raw != "" {
		if verified, err = strconv.ParseBool(raw); err != nil {
			return domprov.Provider{}, 0, fmt.Errorf("parse verified: %w", err)
		}
	}

	var specialties []string
	if raw := m[fieldSpecialties]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &specialties); err != nil {
			return domprov.Provider{}, 0, fmt.Errorf("unmarshal specialties: %w", err)
		}
	}

	var coords *geo.Point
	if rawLat, rawLng := m[fieldLat], m[fieldLng]; rawLat != "" && rawLng != "" {
		lat, err := strconv.ParseFloat(rawLat, 64)
		if err != nil {
			return domprov.Provider{}, 0, fmt.Errorf("parse lat: %w", err)
		}
		lng, err := strconv.ParseFloat(rawLng, 64)
		if err != nil {
			return domprov.Provider{}, 0, fmt.Errorf("parse lng: %w", err)
		}
		coords = &geo.Point{Lat: lat, Lng: lng}
	}

	position := -1
	if raw := m[fieldPosition]; raw != "" {
		if position, err = strconv.Atoi(raw); err != nil {
			return domprov.Provider{}, 0, fmt.Errorf("parse position: %w", err)
		}
	}

	p, err := domprov.New(domprov.Params{
		ID:            m[fieldID],
		Name:          m[fieldName],
		Platform:      m[fieldPlatform],
		PlatformName:  m[fieldPlatformName],
		PlatformIcon:  m[fieldPlatformIcon],
		PlatformColor: m[fieldPlatformColor],
		Rating:        rating,
		Reviews:       reviews,
		Price:         price,
		PriceUnit:     m[fieldPriceUnit],
		Location:      m[fieldLocation],
		Specialties:   specialties,
		Verified:      verified,
		Coordinates:   coords,
	})
	if err != nil {
		return domprov.Provider{}, 0, err
	}
	return p, position, nil
}
