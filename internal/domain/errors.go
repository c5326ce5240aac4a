package domain

import "errors"

var (
	// ErrNotFound signals a missing provider.
	ErrNotFound = errors.New("not found")
	// ErrCatalogUnavailable signals that the provider catalog could not be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidCoordinates signals a latitude/longitude pair outside the valid range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrInvalidProvider signals a catalog record that violates provider invariants.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEmbeddingQuotaExceeded signals that the embedding token budget is spent.
	ErrEmbeddingQuotaExceeded = errors.New("embedding quota exceeded")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)
