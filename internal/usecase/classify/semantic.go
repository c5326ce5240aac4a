package classify

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

// Semantic classifies keywords by cosine similarity between the keyword
// embedding and one reference embedding per category.
// Reference embeddings are computed on first use and kept for the process lifetime.
type Semantic struct {
	docs          domain.Embedder
	queries       domain.Embedder
	minSimilarity float64

	mu      sync.Mutex
	vectors map[category.Category][]float32
}

// NewSemantic creates a semantic classifier. Queries are prefixed with
// cfg.QueryInstruction; category descriptions are embedded as is.
func NewSemantic(embedder domain.Embedder, cfg domain.SemanticConfig) *Semantic {
	queries := embedder
	if cfg.QueryInstruction != "" {
		queries = domain.NewInstructionEmbedder(embedder, cfg.QueryInstruction)
	}
	return &Semantic{
		docs:          embedder,
		queries:       queries,
		minSimilarity: cfg.MinSimilarity,
	}
}

// Classify implements Classifier.
func (s *Semantic) Classify(ctx context.Context, keyword string) (category.Category, bool, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return category.All, false, nil
	}

	refs, err := s.references(ctx)
	if err != nil {
		return category.All, false, err
	}

	res, err := s.queries.Embed(ctx, strings.ToLower(kw))
	if err != nil {
		return category.All, false, fmt.Errorf("%w: embed keyword: %w", domain.ErrEmbeddingProviderError, err)
	}
	domain.UsageFromContext(ctx).AddTokens(res.TotalTokens)

	best, bestScore := category.All, math.Inf(-1)
	for _, c := range category.Ordered() {
		score := cosine(res.Embedding, refs[c])
		// strict comparison keeps the earlier category on ties
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if best == category.All || bestScore < s.minSimilarity {
		return category.All, false, nil
	}
	return best, true, nil
}

// references returns category embeddings, computing them once.
// A failed attempt is retried on the next call.
func (s *Semantic) references(ctx context.Context) (map[category.Category][]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vectors != nil {
		return s.vectors, nil
	}

	vectors := make(map[category.Category][]float32, len(category.Ordered()))
	for _, c := range category.Ordered() {
		res, err := s.docs.Embed(ctx, Describe(c))
		if err != nil {
			return nil, fmt.Errorf("%w: embed category %q: %w", domain.ErrEmbeddingProviderError, c, err)
		}
		domain.UsageFromContext(ctx).AddTokens(res.TotalTokens)
		vectors[c] = res.Embedding
	}
	s.vectors = vectors
	return vectors, nil
}

// Describe renders the reference text embedded for a category.
func Describe(c category.Category) string {
	return c.String() + " services: " + strings.Join(c.Terms(), ", ")
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
