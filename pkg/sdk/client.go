package neighborly

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/neighborly/internal/db"
	dbRedis "github.com/kailas-cloud/neighborly/internal/db/redis"
	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	domprov "github.com/kailas-cloud/neighborly/internal/domain/provider"
	"github.com/kailas-cloud/neighborly/internal/domain/search/filter"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
	"github.com/kailas-cloud/neighborly/internal/domain/search/result"
	"github.com/kailas-cloud/neighborly/internal/domain/search/strategy"
	"github.com/kailas-cloud/neighborly/internal/repository/geocode"
	providerrepo "github.com/kailas-cloud/neighborly/internal/repository/provider"
	cataloguc "github.com/kailas-cloud/neighborly/internal/usecase/catalog"
	classifyuc "github.com/kailas-cloud/neighborly/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/neighborly/internal/usecase/health"
	searchuc "github.com/kailas-cloud/neighborly/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal use case interfaces, replaced by mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, req request.Request) (result.Set, error)
	Classify(ctx context.Context, keyword string) (category.Category, bool)
}

type catalogUseCase interface {
	List(ctx context.Context, spec filter.Spec, sortBy strategy.Strategy) ([]domprov.Provider, error)
	Get(ctx context.Context, id string) (domprov.Provider, error)
	Platforms(ctx context.Context) ([]result.PlatformSummary, error)
}

type catalogWriter interface {
	Replace(ctx context.Context, providers []domprov.Provider) (int, error)
}

// catalogBackend is what the use cases need from a catalog implementation.
type catalogBackend interface {
	cataloguc.Reader
	healthuc.CatalogPinger
}

// Client is the neighborly SDK entry point. It is safe for concurrent use.
type Client struct {
	store      db.Store
	searchSvc  searchUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	writer     catalogWriter
	obs        *observer
}

// New creates a Client. For store-backed catalogs the provided context
// bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var (
		store    db.Store
		backend  catalogBackend
		writer   catalogWriter
		registry *platform.Registry
	)
	switch cfg.source {
	case sourceProviders:
		backend, err = memoryCatalog(cfg.providers)
		registry = platform.NewRegistry(platformInfos(cfg.platforms)...)
	case sourceFile:
		var seed providerrepo.Catalog
		if seed, err = providerrepo.LoadFile(cfg.catalogFile); err != nil {
			return nil, fmt.Errorf("neighborly: %w", err)
		}
		backend, err = providerrepo.NewMemory(seed.Providers)
		registry = platform.NewRegistry(append(seed.Platforms, platformInfos(cfg.platforms)...)...)
	case sourceStore:
		if store, err = connectStore(ctx, cfg); err != nil {
			return nil, err
		}
		repo := providerrepo.NewRepo(store, cfg.keyPrefix)
		backend, writer = repo, repo
		registry = platform.NewRegistry(platformInfos(cfg.platforms)...)
	default:
		return nil, errors.New("neighborly: catalog source required (use WithProviders, WithCatalogFile, WithValkey or WithRedis)")
	}
	if err != nil {
		return nil, fmt.Errorf("neighborly: %w", err)
	}

	searchOpts := []searchuc.Option{searchuc.WithPlatforms(registry)}
	if g, err := buildGeocoder(cfg); err != nil {
		closeStore(store)
		return nil, fmt.Errorf("neighborly: %w", err)
	} else if g != nil {
		searchOpts = append(searchOpts, searchuc.WithGeocoder(g))
	}

	var checker healthuc.EmbeddingChecker
	steps := []classifyuc.Step{{Name: "keyword", Classifier: searchuc.NewKeywordClassifier()}}
	if cfg.embedder != nil {
		sc := domain.DefaultSemanticConfig()
		if cfg.minSimilarity > 0 {
			sc.MinSimilarity = cfg.minSimilarity
		}
		adapter := &embedderAdapter{inner: cfg.embedder}
		steps = append(steps, classifyuc.Step{Name: "semantic", Classifier: classifyuc.NewSemantic(adapter, sc)})
		if hc, ok := cfg.embedder.(domain.HealthChecker); ok {
			checker = hc
		}
	}

	return &Client{
		store:      store,
		searchSvc:  searchuc.New(backend, classifyuc.NewChain(nil, steps...), searchOpts...),
		catalogSvc: cataloguc.New(backend, registry),
		healthSvc:  healthuc.New(backend, checker),
		writer:     writer,
		obs:        obs,
	}, nil
}

func memoryCatalog(in []Provider) (*providerrepo.Memory, error) {
	providers := make([]domprov.Provider, 0, len(in))
	for i, p := range in {
		dp, err := domprov.New(providerParams(p))
		if err != nil {
			return nil, fmt.Errorf("provider %d: %w", i, err)
		}
		providers = append(providers, dp)
	}
	return providerrepo.NewMemory(providers)
}

func connectStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	s, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("neighborly: create store: %w", err)
	}
	if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		s.Close()
		return nil, fmt.Errorf("neighborly: database not ready: %w", err)
	}
	return s, nil
}

func buildGeocoder(cfg *clientConfig) (*geocode.Gazetteer, error) {
	places := geocodePlaces(cfg.places)
	if cfg.geocoderFile != "" {
		filePlaces, err := geocode.LoadPlaces(cfg.geocoderFile)
		if err != nil {
			return nil, err
		}
		places = append(filePlaces, places...)
	}
	if len(places) == 0 {
		return nil, nil
	}
	return geocode.New(places)
}

func closeStore(s db.Store) {
	if s != nil {
		s.Close()
	}
}

// Close releases all resources.
func (c *Client) Close() {
	closeStore(c.store)
}

// Search starts a fluent search query.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{svc: c.searchSvc, obs: c.obs}
}

// Classify infers the service category of a free-text keyword.
// ok is false when no category is recognised.
func (c *Client) Classify(ctx context.Context, keyword string) (cat Category, ok bool) {
	start := time.Now()
	defer func() { c.obs.observe("classify", start, nil, "category", string(cat)) }()

	got, ok := c.searchSvc.Classify(ctx, keyword)
	if !ok {
		return CategoryAll, false
	}
	return Category(got), true
}

// Provider returns one provider by id. Use errors.Is(err, ErrNotFound).
func (c *Client) Provider(ctx context.Context, id string) (_ Provider, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_provider", start, err) }()

	p, err := c.catalogSvc.Get(ctx, id)
	if err != nil {
		return Provider{}, err
	}
	return fromDomainProvider(p), nil
}

// Providers lists the whole catalog in catalog order.
func (c *Client) Providers(ctx context.Context) (_ []Provider, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_providers", start, err) }()

	ps, err := c.catalogSvc.List(ctx, filter.NewSpec(filter.Params{}), strategy.Recommended)
	if err != nil {
		return nil, err
	}
	return fromDomainProviders(ps), nil
}

// Platforms lists platform metadata with the number of providers on each.
func (c *Client) Platforms(ctx context.Context) (_ []PlatformSummary, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_platforms", start, err) }()

	summaries, err := c.catalogSvc.Platforms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PlatformSummary, len(summaries))
	for i, s := range summaries {
		out[i] = fromDomainSummary(s)
	}
	return out, nil
}

// Seed replaces the catalog of a store-backed client and returns the
// number of stale providers removed.
func (c *Client) Seed(ctx context.Context, providers []Provider) (removed int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", start, err, "providers", len(providers)) }()

	if c.writer == nil {
		return 0, errors.New("neighborly: seed requires a store-backed client (use WithValkey or WithRedis)")
	}
	dps := make([]domprov.Provider, 0, len(providers))
	for i, p := range providers {
		dp, err := domprov.New(providerParams(p))
		if err != nil {
			return 0, fmt.Errorf("provider %d: %w", i, err)
		}
		dps = append(dps, dp)
	}
	return c.writer.Replace(ctx, dps)
}
