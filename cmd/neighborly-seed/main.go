// neighborly-seed writes a YAML provider catalog into Redis/Valkey as one
// hash per provider, replacing the previous catalog.
//
// Usage:
//
//	ENV=prod neighborly-seed -file data/providers.yaml
//	neighborly-seed -file data/providers.yaml -dry-run
//
// Connection settings come from the catalog section of config/<ENV>.yaml.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/config"
	dbRedis "github.com/kailas-cloud/neighborly/internal/db/redis"
	logpkg "github.com/kailas-cloud/neighborly/internal/logger"
	providerrepo "github.com/kailas-cloud/neighborly/internal/repository/provider"
	"github.com/kailas-cloud/neighborly/internal/version"
)

type options struct {
	file    string
	dryRun  bool
	version bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.file, "file", "", "catalog YAML file (default: catalog.path from config)")
	flag.BoolVar(&o.dryRun, "dry-run", false, "validate the file without writing")
	flag.BoolVar(&o.version, "version", false, "print version and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()
	if opts.version {
		fmt.Println(version.String())
		return
	}

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(ctx, cfg.Catalog, opts, logger); err != nil {
		logger.Error("seed failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.CatalogConfig, opts options, logger *zap.Logger) error {
	path := opts.file
	if path == "" {
		path = cfg.Path
	}
	if path == "" {
		return errors.New("no catalog file: pass -file or set catalog.path")
	}

	start := time.Now()
	seed, err := providerrepo.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Info("catalog file valid",
		zap.String("file", path),
		zap.Int("providers", len(seed.Providers)),
		zap.Int("platforms", len(seed.Platforms)),
	)
	if opts.dryRun {
		return nil
	}
	if !cfg.UsesStore() {
		return fmt.Errorf("catalog driver %q reads the file directly, nothing to seed", cfg.Driver)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}

	removed, err := providerrepo.NewRepo(store, cfg.KeyPrefix).Replace(ctx, seed.Providers)
	if err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	logger.Info("catalog seeded",
		zap.Int("written", len(seed.Providers)),
		zap.Int("removed", removed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
