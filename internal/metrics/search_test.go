package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveSearch(t *testing.T) {
	rec := NewRecorder()
	before := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("rating", "pet care"))

	rec.ObserveSearch("rating", "pet care", 3)
	rec.ObserveSearch("rating", "pet care", 0)

	if got := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("rating", "pet care")); got != before+2 {
		t.Errorf("search_requests_total: got %f, want %f", got, before+2)
	}
	if testutil.CollectAndCount(SearchResults) == 0 {
		t.Error("expected search_results observations")
	}
}

func TestRecorder_ObserveClassification(t *testing.T) {
	rec := NewRecorder()
	before := testutil.ToFloat64(ClassifierTotal.WithLabelValues("keyword", "matched"))

	rec.ObserveClassification("keyword", "matched")

	if got := testutil.ToFloat64(ClassifierTotal.WithLabelValues("keyword", "matched")); got != before+1 {
		t.Errorf("classifier_total: got %f, want %f", got, before+1)
	}
}
