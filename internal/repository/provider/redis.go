package provider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/db"
	"github.com/kailas-cloud/neighborly/internal/domain"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/logger"
)

// store is the consumer interface for the provider catalog (ISP).
type store interface {
	Ping(ctx context.Context) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo is a provider catalog stored as one hash per provider.
// Key pattern: {prefix}provider:{id}.
type Repo struct {
	store  store
	prefix string
}

// NewRepo creates a hash-backed catalog. An empty prefix means domain.KeyPrefix.
func NewRepo(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = domain.KeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// Snapshot returns all stored providers in seed order.
// Records that fail to parse are skipped and logged.
func (r *Repo) Snapshot(ctx context.Context) ([]domprov.Provider, error) {
	keys, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan providers: %w", err)
	}
	if len(keys) == 0 {
		return []domprov.Provider{}, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi providers: %w", err)
	}

	type positioned struct {
		p   domprov.Provider
		pos int
	}
	rows := make([]positioned, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		p, pos, err := providerFromHash(m)
		if err != nil {
			logger.FromContext(ctx).Warn("skipping corrupt provider record",
				zap.String("key", keys[i]), zap.Error(err))
			continue
		}
		rows = append(rows, positioned{p: p, pos: pos})
	}

	slices.SortStableFunc(rows, func(a, b positioned) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		return cmp.Compare(a.p.ID(), b.p.ID())
	})

	out := make([]domprov.Provider, len(rows))
	for i := range rows {
		out[i] = rows[i].p
	}
	return out, nil
}

// Get retrieves a provider by id.
func (r *Repo) Get(ctx context.Context, id string) (domprov.Provider, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return domprov.Provider{}, fmt.Errorf("hgetall provider %s: %w", id, err)
	}
	if len(m) == 0 {
		return domprov.Provider{}, domain.ErrNotFound
	}
	p, _, err := providerFromHash(m)
	if err != nil {
		return domprov.Provider{}, fmt.Errorf("parse provider %s: %w", id, err)
	}
	return p, nil
}

// Ping checks store connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// Replace stores providers in the given order and removes stored
// providers absent from the list. It returns the number of removed records.
func (r *Repo) Replace(ctx context.Context, providers []domprov.Provider) (int, error) {
	existing, err := r.store.Scan(ctx, r.key("*"))
	if err != nil {
		return 0, fmt.Errorf("scan providers: %w", err)
	}

	items := make([]db.HashSetItem, 0, len(providers))
	keep := make(map[string]struct{}, len(providers))
	for i, p := range providers {
		fields, err := providerToHash(p, i)
		if err != nil {
			return 0, fmt.Errorf("encode provider %s: %w", p.ID(), err)
		}
		key := r.key(p.ID())
		keep[key] = struct{}{}
		items = append(items, db.HashSetItem{Key: key, Fields: fields})
	}

	// HSET merges fields, so kept hashes are cleared first; otherwise fields
	// absent from the new record (lat/lng) would survive the reseed.
	for _, key := range existing {
		if _, ok := keep[key]; !ok {
			continue
		}
		if err := r.store.Del(ctx, key); err != nil {
			return 0, fmt.Errorf("clear %s: %w", key, err)
		}
	}

	if len(items) > 0 {
		if err := r.store.HSetMulti(ctx, items); err != nil {
			return 0, fmt.Errorf("hset providers: %w", err)
		}
	}

	var (
		removed int
		errs    []error
	)
	for _, key := range existing {
		if _, ok := keep[key]; ok {
			continue
		}
		if err := r.store.Del(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("del %s: %w", key, err))
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (r *Repo) key(id string) string {
	return fmt.Sprintf("%sprovider:%s", r.prefix, id)
}
