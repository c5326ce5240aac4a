package health

import "context"

// CatalogPinger checks that the provider catalog can be read.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks the semantic classifier's embedding provider.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
