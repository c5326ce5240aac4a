package neighborly

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// Catalog sources. Exactly one must be configured.
const (
	sourceProviders = "providers"
	sourceFile      = "file"
	sourceStore     = "store"
)

type clientConfig struct {
	source      string
	providers   []Provider
	platforms   []PlatformInfo
	catalogFile string

	addrs     []string
	password  string
	keyPrefix string

	geocoderFile string
	places       []Place

	embedder      Embedder
	minSimilarity float64

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithProviders serves the given providers from memory.
// Records are validated when the client is created.
func WithProviders(providers []Provider) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceProviders
		c.providers = providers
	})
}

// WithPlatforms adds or overrides platform display metadata.
func WithPlatforms(platforms ...PlatformInfo) Option {
	return optionFunc(func(c *clientConfig) {
		c.platforms = append(c.platforms, platforms...)
	})
}

// WithCatalogFile loads providers and platform metadata from a YAML seed file.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceFile
		c.catalogFile = path
	})
}

// WithValkey reads the catalog from a Valkey instance populated by neighborly-seed.
func WithValkey(addr, password string) Option {
	return withStore(addr, password)
}

// WithRedis reads the catalog from a Redis instance populated by neighborly-seed.
func WithRedis(addr, password string) Option {
	return withStore(addr, password)
}

func withStore(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.source = sourceStore
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix sets the key prefix of catalog hashes. Default: "neighborly:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithGeocoderFile enables distance enrichment using a YAML gazetteer.
func WithGeocoderFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.geocoderFile = path
	})
}

// WithPlaces enables distance enrichment using the given places.
func WithPlaces(places ...Place) Option {
	return optionFunc(func(c *clientConfig) {
		c.places = append(c.places, places...)
	})
}

// WithEmbedder enables semantic classification of keywords the term
// table does not recognise. minSimilarity <= 0 keeps the default threshold.
func WithEmbedder(e Embedder, minSimilarity float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
		c.minSimilarity = minSimilarity
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
