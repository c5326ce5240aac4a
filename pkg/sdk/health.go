package neighborly

import (
	"context"
	"time"

	healthuc "github.com/kailas-cloud/neighborly/internal/usecase/health"
)

// Health status values.
const (
	StatusOK       = string(healthuc.Healthy)
	StatusDegraded = string(healthuc.Degraded)
	StatusError    = string(healthuc.Unhealthy)
)

// HealthStatus is the outcome of Client.Health.
// Checks maps a component ("catalog", "classifier") to "ok" or "error".
type HealthStatus struct {
	Status string
	Checks map[string]string
}

// Healthy reports whether searches can be served. A failing classifier
// only degrades keyword inference.
func (h HealthStatus) Healthy() bool {
	return h.Status != StatusError
}

// Health checks the catalog and, when configured, the embedder.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)
	c.obs.observe("health", start, nil, "status", string(report.Status))

	hs := HealthStatus{Status: string(report.Status), Checks: make(map[string]string, len(report.Checks))}
	for component, res := range report.Checks {
		hs.Checks[component] = string(res)
	}
	return hs
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
