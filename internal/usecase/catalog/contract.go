package catalog

import (
	"context"

	"github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Reader is the read side of the provider catalog.
type Reader interface {
	Snapshot(ctx context.Context) ([]provider.Provider, error)
	Get(ctx context.Context, id string) (provider.Provider, error)
}
