package classify

import (
	"context"
	"strings"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

// --- Mocks ---

type mockClassifier struct {
	category category.Category
	ok       bool
	err      error
	calls    int
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (category.Category, bool, error) {
	m.calls++
	return m.category, m.ok, m.err
}

type mockObserver struct {
	events []string
}

func (m *mockObserver) ObserveClassification(classifier, outcome string) {
	m.events = append(m.events, classifier+":"+outcome)
}

// axisEmbedder maps each category description to its own axis and a query
// to the axis of the first category whose name appears in hints[query].
type axisEmbedder struct {
	hints  map[string][]float32
	err    error
	texts  []string
	tokens int
}

func (m *axisEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.texts = append(m.texts, text)
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	for i, c := range category.Ordered() {
		if text == Describe(c) {
			return domain.EmbeddingResult{Embedding: axis(i), TotalTokens: m.tokens}, nil
		}
	}
	for q, v := range m.hints {
		if strings.HasSuffix(text, q) {
			return domain.EmbeddingResult{Embedding: v, TotalTokens: m.tokens}, nil
		}
	}
	return domain.EmbeddingResult{Embedding: make([]float32, len(category.Ordered())), TotalTokens: m.tokens}, nil
}

func axis(i int) []float32 {
	v := make([]float32, len(category.Ordered()))
	v[i] = 1
	return v
}
