package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/config"
	"github.com/kailas-cloud/neighborly/internal/db"
	dbRedis "github.com/kailas-cloud/neighborly/internal/db/redis"
	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/platform"
	logpkg "github.com/kailas-cloud/neighborly/internal/logger"
	"github.com/kailas-cloud/neighborly/internal/metrics"
	budgetrepo "github.com/kailas-cloud/neighborly/internal/repository/budget"
	"github.com/kailas-cloud/neighborly/internal/repository/embcache"
	"github.com/kailas-cloud/neighborly/internal/repository/geocode"
	providerrepo "github.com/kailas-cloud/neighborly/internal/repository/provider"
	chiTransport "github.com/kailas-cloud/neighborly/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/neighborly/internal/transport/openai"
	catalogUC "github.com/kailas-cloud/neighborly/internal/usecase/catalog"
	classifyUC "github.com/kailas-cloud/neighborly/internal/usecase/classify"
	embeddingUC "github.com/kailas-cloud/neighborly/internal/usecase/embedding"
	healthUC "github.com/kailas-cloud/neighborly/internal/usecase/health"
	searchUC "github.com/kailas-cloud/neighborly/internal/usecase/search"
	"github.com/kailas-cloud/neighborly/internal/version"
)

// catalogBackend is what the services need from a catalog implementation.
type catalogBackend interface {
	catalogUC.Reader
	healthUC.CatalogPinger
}

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting neighborly API server",
		zap.String("version", version.String()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
		zap.Bool("semantic_classifier", cfg.Classifier.Semantic.Enabled),
	)

	metrics.Register()
	ctx := context.Background()

	var store db.Store
	if cfg.Catalog.UsesStore() {
		store, err = connectStore(ctx, cfg.Catalog)
		if err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		defer store.Close()
		logger.Info("Connected to database", zap.Strings("addrs", cfg.Catalog.Addrs))
	}

	catalog, registry, err := buildCatalog(cfg.Catalog, store)
	if err != nil {
		logger.Fatal("Failed to build catalog", zap.Error(err))
	}

	recorder := metrics.NewRecorder()
	opts := []searchUC.Option{searchUC.WithPlatforms(registry), searchUC.WithObserver(recorder)}
	if cfg.Geocoder.Path != "" {
		gaz, err := geocode.Load(cfg.Geocoder.Path)
		if err != nil {
			logger.Fatal("Failed to load gazetteer", zap.Error(err))
		}
		opts = append(opts, searchUC.WithGeocoder(gaz))
		logger.Info("Gazetteer loaded", zap.Int("names", gaz.Len()))
	}

	steps := []classifyUC.Step{{Name: "keyword", Classifier: searchUC.NewKeywordClassifier()}}
	var embeddingChecker healthUC.EmbeddingChecker
	if cfg.Classifier.Semantic.Enabled {
		embedder := buildEmbedder(ctx, cfg.Classifier.Semantic, store, logger)
		steps = append(steps, classifyUC.Step{
			Name:       "semantic",
			Classifier: classifyUC.NewSemantic(embedder, semanticConfig(cfg.Classifier.Semantic)),
		})
		embeddingChecker = embedder
		logger.Info("Semantic classifier enabled",
			zap.String("provider", cfg.Classifier.Semantic.Provider),
			zap.String("model", cfg.Classifier.Semantic.Model),
		)
	}
	classifier := classifyUC.NewChain(recorder, steps...)

	searchSvc := searchUC.New(catalog, classifier, opts...)
	catalogSvc := catalogUC.New(catalog, registry)
	healthSvc := healthUC.New(catalog, embeddingChecker)

	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys: cfg.Auth.APIKeys,
		Logger:  logger,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func connectStore(ctx context.Context, cfg config.CatalogConfig) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("wait for store: %w", err)
	}
	return store, nil
}

// buildCatalog returns the provider catalog and the platform registry.
// A seed file, when configured, contributes extra platform metadata in every mode.
func buildCatalog(cfg config.CatalogConfig, store db.Store) (catalogBackend, *platform.Registry, error) {
	var seed providerrepo.Catalog
	if cfg.Path != "" {
		var err error
		if seed, err = providerrepo.LoadFile(cfg.Path); err != nil {
			return nil, nil, err
		}
	}
	registry := platform.NewRegistry(seed.Platforms...)

	if cfg.UsesStore() {
		return providerrepo.NewRepo(store, cfg.KeyPrefix), registry, nil
	}

	mem, err := providerrepo.NewMemory(seed.Providers)
	if err != nil {
		return nil, nil, fmt.Errorf("build memory catalog: %w", err)
	}
	return mem, registry, nil
}

func semanticConfig(cfg config.SemanticConfig) domain.SemanticConfig {
	sc := domain.DefaultSemanticConfig()
	sc.Model = cfg.Model
	sc.Dimensions = cfg.Dimensions
	sc.MinSimilarity = cfg.MinSimilarity
	if cfg.QueryInstruction != "" {
		sc.QueryInstruction = cfg.QueryInstruction
	}
	return sc
}

// buildEmbedder assembles the decorator chain: OpenAI -> Cached -> Guarded.
// The semantic classifier adds the query instruction on top.
func buildEmbedder(
	ctx context.Context,
	cfg config.SemanticConfig,
	store db.Store,
	logger *zap.Logger,
) *embeddingUC.Guarded {
	var embedder domain.Embedder = openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		Dimensions: cfg.Dimensions,
		Provider:   cfg.Provider,
		Timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
		Logger:     logger,
	})

	if cfg.Cache.Enabled && store != nil {
		embedder = embcache.New(embedder, store, cfg.Model,
			time.Duration(cfg.Cache.TTLHour)*time.Hour, metrics.EmbeddingCacheTotal, logger)
	}

	// Pass a nil interface, not a typed nil pointer, when no budget is configured.
	var limiter embeddingUC.Limiter
	if cfg.Budget.Enabled() {
		action := embeddingUC.ActionWarn
		if cfg.Budget.Action == "reject" {
			action = embeddingUC.ActionReject
		}
		budget := embeddingUC.NewBudget(
			cfg.Provider, cfg.Budget.DailyTokenLimit, cfg.Budget.MonthlyTokenLimit, action, logger,
		)
		if store != nil {
			budget.WithStore(ctx, budgetrepo.New(store, 0, 0))
		}
		limiter = budget
	}

	return embeddingUC.NewGuarded(embedder, cfg.Provider, cfg.Model, limiter, logger)
}
