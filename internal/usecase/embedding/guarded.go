package embedding

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/metrics"
)

// Limiter enforces a token budget.
type Limiter interface {
	Check(ctx context.Context) error
	Record(tokens int64)
	Remaining() map[string]int64
}

// Guarded wraps an Embedder with budget enforcement and debug logging.
// Request/latency metrics live in transport/openai; this layer only owns
// the budget gauge.
type Guarded struct {
	inner    domain.Embedder
	provider string
	model    string
	limiter  Limiter
	logger   *zap.Logger
}

// NewGuarded creates a guarded embedder. limiter may be nil.
func NewGuarded(inner domain.Embedder, provider, model string, limiter Limiter, logger *zap.Logger) *Guarded {
	return &Guarded{inner: inner, provider: provider, model: model, limiter: limiter, logger: logger}
}

// Embed checks the budget, delegates, and records usage.
func (g *Guarded) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	if g.limiter != nil {
		if err := g.limiter.Check(ctx); err != nil {
			return domain.EmbeddingResult{}, fmt.Errorf("budget check: %w", err)
		}
	}

	start := time.Now()
	res, err := g.inner.Embed(ctx, text)
	if err != nil {
		g.logger.Error("embedding request failed",
			zap.String("provider", g.provider),
			zap.String("model", g.model),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}

	if g.limiter != nil && res.TotalTokens > 0 {
		g.limiter.Record(int64(res.TotalTokens))
		for period, left := range g.limiter.Remaining() {
			metrics.EmbeddingBudgetTokensRemaining.WithLabelValues(g.provider, period).Set(float64(left))
		}
	}

	g.logger.Debug("embedding request completed",
		zap.String("provider", g.provider),
		zap.String("model", g.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("dimensions", len(res.Embedding)),
		zap.Int("total_tokens", res.TotalTokens),
	)
	return res, nil
}

// HealthCheck delegates to the inner embedder when it supports it.
func (g *Guarded) HealthCheck(ctx context.Context) error {
	if hc, ok := g.inner.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("guarded embedder: %w", err)
		}
	}
	return nil
}
