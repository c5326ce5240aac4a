package neighborly

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserver_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newMemoryClient(t, WithPrometheus(reg))

	if _, err := c.Search().Keyword("dog").Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, err := c.Provider(context.Background(), "missing"); err == nil {
		t.Fatal("expected error")
	}

	ops := c.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("search", "ok")); got != 1 {
		t.Errorf("search ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("get_provider", "error")); got != 1 {
		t.Errorf("get_provider error = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.obs.metrics.searchResults); got != 1 {
		t.Errorf("search_results series = %d, want 1", got)
	}
}

func TestObserver_ReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newMemoryClient(t, WithPrometheus(reg))
	b := newMemoryClient(t, WithPrometheus(reg))

	if a.obs.metrics.operations != b.obs.metrics.operations {
		t.Error("clients on one registerer must share collectors")
	}
}

func TestObserver_IncompatibleCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "neighborly",
		Subsystem: "sdk",
		Name:      "operations_total",
		Help:      "conflicting collector",
	}, []string{"operation", "status"}))

	_, err := New(context.Background(), WithProviders(sampleProviders()), WithPrometheus(reg))
	if err == nil {
		t.Fatal("expected registration error")
	}
}

func TestObserver_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs, err := newObserver(log, nil)
	if err != nil {
		t.Fatal(err)
	}

	obs.observe("search", time.Now(), nil, "total", 3)
	obs.observe("seed", time.Now(), errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "op=search") || !strings.Contains(out, "total=3") {
		t.Errorf("missing debug line: %s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "error=boom") {
		t.Errorf("missing warn line: %s", out)
	}
}

func TestObserver_Nil(t *testing.T) {
	var obs *observer
	obs.observe("search", time.Now(), nil)
}
