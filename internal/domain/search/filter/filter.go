package filter

import (
	"math"
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

// MaxSpecialties is the maximum number of selected specialty tags per query.
const MaxSpecialties = 32

// PlatformAll disables platform filtering.
const PlatformAll = "all"

// Params carries the raw per-request filter inputs.
type Params struct {
	Category    category.Category
	Location    string
	Platform    string
	MinRating   *float64
	MinPrice    *float64
	MaxPrice    *float64
	Keyword     string
	Specialties []string
}

// Spec is the set of active filter constraints of one query.
// Default-valued fields impose no constraint.
type Spec struct {
	category    category.Category
	location    string
	platform    string
	minRating   *float64
	minPrice    *float64
	maxPrice    *float64
	keyword     string
	specialties []string
}

// NewSpec normalises raw inputs. It never fails: unknown categories, "all",
// blank strings and non-finite thresholds become "no constraint".
func NewSpec(p Params) Spec {
	c := p.Category
	if !c.IsValid() {
		c = category.All
	}

	platform := strings.ToLower(strings.TrimSpace(p.Platform))
	if platform == PlatformAll {
		platform = ""
	}

	var specialties []string
	for _, s := range p.Specialties {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		specialties = append(specialties, s)
		if len(specialties) == MaxSpecialties {
			break
		}
	}

	return Spec{
		category:    c,
		location:    strings.ToLower(strings.TrimSpace(p.Location)),
		platform:    platform,
		minRating:   finite(p.MinRating),
		minPrice:    finite(p.MinPrice),
		maxPrice:    finite(p.MaxPrice),
		keyword:     strings.ToLower(strings.TrimSpace(p.Keyword)),
		specialties: specialties,
	}
}

// WithCategory returns a copy of s constrained to c.
func (s Spec) WithCategory(c category.Category) Spec {
	if !c.IsValid() {
		c = category.All
	}
	s.category = c
	return s
}

// Category returns the category constraint (All when unconstrained).
func (s Spec) Category() category.Category {
	if s.category == "" {
		return category.All
	}
	return s.category
}

// Location returns the lower-cased location substring.
func (s Spec) Location() string { return s.location }

// Platform returns the lower-cased platform key ("" when unconstrained).
func (s Spec) Platform() string { return s.platform }

// MinRating returns the rating floor.
func (s Spec) MinRating() *float64 { return s.minRating }

// MinPrice returns the lower price bound.
func (s Spec) MinPrice() *float64 { return s.minPrice }

// MaxPrice returns the upper price bound.
func (s Spec) MaxPrice() *float64 { return s.maxPrice }

// Keyword returns the lower-cased, trimmed search keyword.
func (s Spec) Keyword() string { return s.keyword }

// Specialties returns the lower-cased selected specialty tags.
func (s Spec) Specialties() []string { return s.specialties }

// IsEmpty reports whether the spec imposes no constraint at all.
func (s Spec) IsEmpty() bool {
	return s.Category() == category.All &&
		s.location == "" && s.platform == "" &&
		s.minRating == nil && s.minPrice == nil && s.maxPrice == nil &&
		s.keyword == "" && len(s.specialties) == 0
}

func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	f := *v
	return &f
}
