package domain

import (
	"context"
	"sync"
)

type embeddingUsageKey struct{}

// EmbeddingUsage tallies the embedding work done for one request.
// The transport installs it, the semantic classifier and the cache report
// into it. Methods are safe on a nil receiver and for concurrent use.
type EmbeddingUsage struct {
	mu        sync.Mutex
	tokens    int
	calls     int
	cacheHits int
}

// NewContextWithUsage returns a context carrying a fresh usage collector.
func NewContextWithUsage(ctx context.Context) (context.Context, *EmbeddingUsage) {
	u := &EmbeddingUsage{}
	return context.WithValue(ctx, embeddingUsageKey{}, u), u
}

// UsageFromContext returns the request collector, nil when none is installed.
func UsageFromContext(ctx context.Context) *EmbeddingUsage {
	u, _ := ctx.Value(embeddingUsageKey{}).(*EmbeddingUsage)
	return u
}

// AddTokens records one provider call that consumed n tokens.
func (u *EmbeddingUsage) AddTokens(n int) {
	if u == nil {
		return
	}
	u.mu.Lock()
	u.tokens += n
	u.calls++
	u.mu.Unlock()
}

// AddCacheHit records an embedding served from cache.
func (u *EmbeddingUsage) AddCacheHit() {
	if u == nil {
		return
	}
	u.mu.Lock()
	u.cacheHits++
	u.mu.Unlock()
}

// Tokens returns the tokens consumed so far.
func (u *EmbeddingUsage) Tokens() int {
	if u == nil {
		return 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tokens
}

// CacheHits returns the number of embeddings served from cache.
func (u *EmbeddingUsage) CacheHits() int {
	if u == nil {
		return 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cacheHits
}

// Used reports whether any embedding was requested, cached or not.
func (u *EmbeddingUsage) Used() bool {
	if u == nil {
		return false
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls > 0 || u.cacheHits > 0
}
