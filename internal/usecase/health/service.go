package health

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional component failed; search still works.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog is unreachable.
	Unhealthy Status = "error"
)

// CheckResult is the outcome of one component check.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names reported in Report.Checks.
const (
	ComponentCatalog    = "catalog"
	ComponentClassifier = "classifier"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog   CatalogPinger
	embedding EmbeddingChecker
}

// New creates a Service. embedding is nil when the semantic classifier is off.
func New(catalog CatalogPinger, embedding EmbeddingChecker) *Service {
	return &Service{catalog: catalog, embedding: embedding}
}

// Check runs all component checks.
func (s *Service) Check(ctx context.Context) Report {
	log := logger.FromContext(ctx)
	checks := make(map[string]CheckResult, 2)
	status := Healthy

	if err := s.catalog.Ping(ctx); err != nil {
		log.Warn("catalog health check failed", zap.Error(err))
		checks[ComponentCatalog] = CheckError
		status = Unhealthy
	} else {
		checks[ComponentCatalog] = CheckOK
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			log.Warn("classifier health check failed", zap.Error(err))
			checks[ComponentClassifier] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks[ComponentClassifier] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
