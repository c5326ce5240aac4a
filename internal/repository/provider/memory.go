package provider

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/neighborly/internal/domain"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
)

// Memory is an immutable in-process catalog snapshot.
// It is safe for concurrent use; callers must not modify returned slices.
type Memory struct {
	providers []domprov.Provider
	byID      map[string]int
}

// NewMemory creates a snapshot in the given order. Duplicate ids are rejected.
func NewMemory(providers []domprov.Provider) (*Memory, error) {
	m := &Memory{
		providers: make([]domprov.Provider, len(providers)),
		byID:      make(map[string]int, len(providers)),
	}
	copy(m.providers, providers)
	for i, p := range m.providers {
		if _, dup := m.byID[p.ID()]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidProvider, p.ID())
		}
		m.byID[p.ID()] = i
	}
	return m, nil
}

// Snapshot returns the catalog in seed order.
func (m *Memory) Snapshot(_ context.Context) ([]domprov.Provider, error) {
	return m.providers, nil
}

// Get returns a provider by id.
func (m *Memory) Get(_ context.Context, id string) (domprov.Provider, error) {
	i, ok := m.byID[id]
	if !ok {
		return domprov.Provider{}, domain.ErrNotFound
	}
	return m.providers[i], nil
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error { return nil }

// Len returns the number of providers.
func (m *Memory) Len() int { return len(m.providers) }
