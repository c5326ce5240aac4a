package search

import (
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/filter"
)

// Filter returns the providers passing every active constraint of spec,
// in catalog order. The catalog is never modified and the result is a new slice.
func Filter(catalog []provider.Provider, spec filter.Spec) []provider.Provider {
	out := make([]provider.Provider, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, spec) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p provider.Provider, spec filter.Spec) bool {
	if c := spec.Category(); c != category.All && !matchesCategory(p, c) {
		return false
	}
	if loc := spec.Location(); loc != "" && !strings.Contains(strings.ToLower(p.Location()), loc) {
		return false
	}
	if pl := spec.Platform(); pl != "" && !strings.EqualFold(p.Platform(), pl) {
		return false
	}
	if v := spec.MinRating(); v != nil && p.Rating() < *v {
		return false
	}
	if v := spec.MinPrice(); v != nil && p.Price() < *v {
		return false
	}
	if v := spec.MaxPrice(); v != nil && p.Price() > *v {
		return false
	}
	if kw := spec.Keyword(); kw != "" && !matchesKeyword(p, kw) {
		return false
	}
	if tags := spec.Specialties(); len(tags) > 0 && !matchesSpecialties(p, tags) {
		return false
	}
	return true
}

// matchesCategory passes when a specialty and the category name contain each
// other, or a specialty and one of the category terms do on word boundaries.
func matchesCategory(p provider.Provider, c category.Category) bool {
	name := c.String()
	terms := c.Terms()
	for _, s := range p.Specialties() {
		s = strings.ToLower(strings.TrimSpace(s))
		if containsEither(s, name) {
			return true
		}
		for _, t := range terms {
			if containsWordsEither(s, t) {
				return true
			}
		}
	}
	return false
}

// matchesKeyword passes when any keyword word, or the whole keyword,
// is a substring of the name or of any specialty.
func matchesKeyword(p provider.Provider, kw string) bool {
	fields := make([]string, 0, len(p.Specialties())+1)
	fields = append(fields, strings.ToLower(p.Name()))
	for _, s := range p.Specialties() {
		fields = append(fields, strings.ToLower(s))
	}

	words := strings.Fields(kw)
	for _, f := range fields {
		if strings.Contains(f, kw) {
			return true
		}
		for _, w := range words {
			if strings.Contains(f, w) {
				return true
			}
		}
	}
	return false
}

func matchesSpecialties(p provider.Provider, tags []string) bool {
	for _, s := range p.Specialties() {
		s = strings.ToLower(s)
		for _, t := range tags {
			if containsEither(s, t) {
				return true
			}
		}
	}
	return false
}
