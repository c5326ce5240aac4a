package embedding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain"
)

// Action is what happens once a token limit is reached.
type Action string

const (
	// ActionWarn logs and lets the request through.
	ActionWarn Action = "warn"
	// ActionReject fails the request with domain.ErrEmbeddingQuotaExceeded.
	ActionReject Action = "reject"
)

// CounterStore persists token counters. IncrBy must be safe to repeat.
type CounterStore interface {
	IncrBy(ctx context.Context, key string, val int64) error
	Get(ctx context.Context, key string) (int64, error)
}

// period is one rolling budget window (calendar day or month, UTC).
type period struct {
	name     string
	layout   string
	limit    int64
	used     int64
	start    time.Time
	truncate func(time.Time) time.Time
}

func (p *period) roll(now time.Time) {
	if cur := p.truncate(now); cur.After(p.start) {
		p.start = cur
		p.used = 0
	}
}

func (p *period) exceeded() bool { return p.limit > 0 && p.used >= p.limit }

func (p *period) remaining() int64 {
	if p.limit == 0 {
		return -1
	}
	return max(p.limit-p.used, 0)
}

// Budget caps embedding tokens per UTC day and month.
// Checks are served from memory; recorded usage is written behind to the store.
type Budget struct {
	mu       sync.Mutex
	provider string
	action   Action
	periods  [2]*period
	store    CounterStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewBudget creates a budget. A zero limit means unlimited.
func NewBudget(provider string, daily, monthly int64, action Action, logger *zap.Logger) *Budget {
	b := &Budget{
		provider: provider,
		action:   action,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		periods: [2]*period{
			{name: "daily", layout: "2006-01-02", limit: daily, truncate: startOfDay},
			{name: "monthly", layout: "2006-01", limit: monthly, truncate: startOfMonth},
		},
	}
	now := b.now()
	for _, p := range b.periods {
		p.start = p.truncate(now)
	}
	return b
}

// WithStore attaches persistence and loads the counters of the current periods.
func (b *Budget) WithStore(ctx context.Context, store CounterStore) *Budget {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.store = store
	now := b.now()
	for _, p := range b.periods {
		used, err := store.Get(ctx, b.key(p, now))
		if err != nil {
			b.logger.Warn("load token budget", zap.String("period", p.name), zap.Error(err))
			continue
		}
		p.used = used
	}
	return b
}

func (b *Budget) key(p *period, t time.Time) string {
	return fmt.Sprintf("%sbudget:%s:%s:%s", domain.KeyPrefix, b.provider, p.name, t.Format(p.layout))
}

// Check reports domain.ErrEmbeddingQuotaExceeded when a limit is reached and
// the action is ActionReject.
func (b *Budget) Check(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	var hit []string
	for _, p := range b.periods {
		p.roll(now)
		if p.exceeded() {
			hit = append(hit, p.name)
		}
	}
	if len(hit) == 0 {
		return nil
	}
	if b.action == ActionReject {
		return fmt.Errorf("%w: %s limit reached", domain.ErrEmbeddingQuotaExceeded, hit[0])
	}
	b.logger.Warn("embedding token budget exceeded",
		zap.String("provider", b.provider),
		zap.Strings("periods", hit),
	)
	return nil
}

// Record adds consumed tokens and persists them when a store is attached.
func (b *Budget) Record(tokens int64) {
	if tokens <= 0 {
		return
	}

	b.mu.Lock()
	now := b.now()
	keys := make([]string, 0, len(b.periods))
	for _, p := range b.periods {
		p.roll(now)
		p.used += tokens
		keys = append(keys, b.key(p, now))
	}
	store := b.store
	b.mu.Unlock()

	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, k := range keys {
		if err := store.IncrBy(ctx, k, tokens); err != nil {
			b.logger.Warn("persist token budget", zap.String("key", k), zap.Error(err))
		}
	}
}

// Remaining returns tokens left per period name; -1 means unlimited.
func (b *Budget) Remaining() map[string]int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	out := make(map[string]int64, len(b.periods))
	for _, p := range b.periods {
		p.roll(now)
		out[p.name] = p.remaining()
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
