package classify

import (
	"context"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

// Classifier infers a category from a free-text keyword.
type Classifier interface {
	Classify(ctx context.Context, keyword string) (category.Category, bool, error)
}

// Observer records classification outcomes. A nil Observer is allowed.
type Observer interface {
	ObserveClassification(classifier, outcome string)
}

// Outcome labels.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeError     = "error"
)
