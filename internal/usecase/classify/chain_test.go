package classify

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/neighborly/internal/domain/category"
)

func TestChain_FirstMatchWins(t *testing.T) {
	first := &mockClassifier{category: category.Tutoring, ok: true}
	second := &mockClassifier{category: category.Moving, ok: true}
	obs := &mockObserver{}

	c := NewChain(obs, Step{"keyword", first}, Step{"semantic", second})
	got, ok, err := c.Classify(context.Background(), "math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != category.Tutoring {
		t.Errorf("got (%q, %v), want tutoring", got, ok)
	}
	if second.calls != 0 {
		t.Error("second step must not run after a match")
	}
	if !slices.Equal(obs.events, []string{"keyword:matched"}) {
		t.Errorf("events: %v", obs.events)
	}
}

func TestChain_FallsThrough(t *testing.T) {
	tests := []struct {
		name   string
		first  *mockClassifier
		events []string
	}{
		{"unmatched", &mockClassifier{}, []string{"keyword:unmatched", "semantic:matched"}},
		{"error", &mockClassifier{err: errors.New("boom")}, []string{"keyword:error", "semantic:matched"}},
		{"invalid category", &mockClassifier{category: category.All, ok: true}, []string{"keyword:unmatched", "semantic:matched"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &mockObserver{}
			second := &mockClassifier{category: category.Childcare, ok: true}

			got, ok, err := NewChain(obs, Step{"keyword", tt.first}, Step{"semantic", second}).
				Classify(context.Background(), "sitter")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok || got != category.Childcare {
				t.Errorf("got (%q, %v), want childcare", got, ok)
			}
			if !slices.Equal(obs.events, tt.events) {
				t.Errorf("events: got %v, want %v", obs.events, tt.events)
			}
		})
	}
}

func TestChain_NoMatch(t *testing.T) {
	c := NewChain(nil,
		Step{"keyword", &mockClassifier{}},
		Step{"semantic", &mockClassifier{err: errors.New("down")}},
		Step{"skipped", nil},
	)

	got, ok, err := c.Classify(context.Background(), "quantum")
	if err != nil {
		t.Fatalf("chain must swallow step errors, got %v", err)
	}
	if ok || got != category.All {
		t.Errorf("got (%q, %v), want no match", got, ok)
	}
}
