package search

import (
	"context"
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

// KeywordClassifier maps a keyword to the first category, in priority order,
// whose term list overlaps the keyword by substring containment.
// It is stateless and safe for concurrent use.
type KeywordClassifier struct{}

// NewKeywordClassifier creates a keyword classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify implements Classifier. It never returns an error.
func (k *KeywordClassifier) Classify(_ context.Context, keyword string) (category.Category, bool, error) {
	c, ok := k.Match(keyword)
	return c, ok, nil
}

// Match returns the inferred category, or (All, false) for blank or unmatched keywords.
func (k *KeywordClassifier) Match(keyword string) (category.Category, bool) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return category.All, false
	}
	words := strings.Fields(kw)

	for _, c := range category.Ordered() {
		for _, term := range c.Terms() {
			if termMatches(kw, words, term) {
				return c, true
			}
		}
	}
	return category.All, false
}

func termMatches(kw string, words []string, term string) bool {
	if strings.Contains(kw, term) {
		return true
	}
	for _, w := range words {
		if strings.Contains(w, term) || strings.Contains(term, w) {
			return true
		}
	}
	return false
}
