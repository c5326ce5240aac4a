package classify

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/logger"
)

// Step is a named classifier inside a Chain.
type Step struct {
	Name       string
	Classifier Classifier
}

// Chain tries classifiers in order and returns the first match.
// A failing step is logged and skipped, so a Chain never returns an error.
type Chain struct {
	steps    []Step
	observer Observer
}

// NewChain creates a chain. Steps with a nil classifier are dropped.
func NewChain(observer Observer, steps ...Step) *Chain {
	c := &Chain{observer: observer}
	for _, s := range steps {
		if s.Classifier != nil {
			c.steps = append(c.steps, s)
		}
	}
	return c
}

// Classify implements Classifier.
func (c *Chain) Classify(ctx context.Context, keyword string) (category.Category, bool, error) {
	for _, s := range c.steps {
		got, ok, err := s.Classifier.Classify(ctx, keyword)
		switch {
		case err != nil:
			c.observe(s.Name, OutcomeError)
			logger.FromContext(ctx).Warn("classifier step failed",
				zap.String("classifier", s.Name),
				zap.Error(err),
			)
		case ok && got.IsValid():
			c.observe(s.Name, OutcomeMatched)
			return got, true, nil
		default:
			c.observe(s.Name, OutcomeUnmatched)
		}
	}
	return category.All, false, nil
}

func (c *Chain) observe(name, outcome string) {
	if c.observer != nil {
		c.observer.ObserveClassification(name, outcome)
	}
}
