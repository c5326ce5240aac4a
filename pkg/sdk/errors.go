package neighborly

import "github.com/kailas-cloud/neighborly/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound               = domain.ErrNotFound
	ErrCatalogUnavailable     = domain.ErrCatalogUnavailable
	ErrInvalidProvider        = domain.ErrInvalidProvider
	ErrInvalidCoordinates     = domain.ErrInvalidCoordinates
	ErrEmbeddingQuotaExceeded = domain.ErrEmbeddingQuotaExceeded
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)
