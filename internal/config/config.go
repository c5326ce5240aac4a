package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverValkey = "valkey"
)

// Config holds the neighborly API configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Geocoder   GeocoderConfig   `yaml:"geocoder"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig selects and configures the provider catalog backend.
type CatalogConfig struct {
	Driver           string   `yaml:"driver"` // memory (default), redis, valkey
	Path             string   `yaml:"path"`   // seed file, required for memory
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// UsesStore reports whether the catalog lives in Redis/Valkey.
func (c CatalogConfig) UsesStore() bool {
	return c.Driver == DriverRedis || c.Driver == DriverValkey
}

// GeocoderConfig holds the gazetteer location.
type GeocoderConfig struct {
	Path string `yaml:"path"` // empty disables location-based distance
}

// ClassifierConfig holds keyword classification settings.
type ClassifierConfig struct {
	Semantic SemanticConfig `yaml:"semantic"`
}

// SemanticConfig configures the embedding-based fallback classifier.
type SemanticConfig struct {
	Enabled          bool         `yaml:"enabled"`
	Provider         string       `yaml:"provider"`
	BaseURL          string       `yaml:"base_url"`
	APIKey           string       `yaml:"api_key"`
	Model            string       `yaml:"model"`
	Dimensions       int          `yaml:"dimensions"`
	MinSimilarity    float64      `yaml:"min_similarity"`
	QueryInstruction string       `yaml:"query_instruction"`
	TimeoutSec       int          `yaml:"timeout_sec"`
	Cache            CacheConfig  `yaml:"cache"`
	Budget           BudgetConfig `yaml:"budget"`
}

// CacheConfig holds embedding cache settings. The cache needs a store-backed catalog.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	TTLHour int  `yaml:"ttl_hours"`
}

// BudgetConfig holds token budget settings.
type BudgetConfig struct {
	DailyTokenLimit   int64  `yaml:"daily_token_limit"`   // 0 = unlimited
	MonthlyTokenLimit int64  `yaml:"monthly_token_limit"` // 0 = unlimited
	Action            string `yaml:"action"`              // "reject" | "warn" (default)
}

// Enabled reports whether any limit is configured.
func (b BudgetConfig) Enabled() bool {
	return b.DailyTokenLimit > 0 || b.MonthlyTokenLimit > 0
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse expands ${VAR} references, decodes YAML, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}

	c.Catalog.Driver = strings.ToLower(strings.TrimSpace(c.Catalog.Driver))
	if c.Catalog.Driver == "" {
		c.Catalog.Driver = DriverMemory
	}
	if c.Catalog.ReadinessTimeout <= 0 {
		c.Catalog.ReadinessTimeout = 10
	}
	if c.Catalog.KeyPrefix == "" {
		c.Catalog.KeyPrefix = "neighborly:"
	}

	s := &c.Classifier.Semantic
	if s.Provider == "" {
		s.Provider = "openai"
	}
	if s.Model == "" {
		s.Model = "text-embedding-3-small"
	}
	if s.Dimensions <= 0 {
		s.Dimensions = 256
	}
	if s.MinSimilarity <= 0 {
		s.MinSimilarity = 0.35
	}
	if s.TimeoutSec <= 0 {
		s.TimeoutSec = 5
	}
	if s.Cache.TTLHour <= 0 {
		s.Cache.TTLHour = 24 * 30
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	switch c.Catalog.Driver {
	case DriverMemory:
		if c.Catalog.Path == "" {
			return errors.New("catalog.path is required for the memory driver")
		}
	case DriverRedis, DriverValkey:
		if len(c.Catalog.Addrs) == 0 {
			return fmt.Errorf("catalog.addrs is required for the %s driver", c.Catalog.Driver)
		}
	default:
		return fmt.Errorf("catalog.driver must be %q, %q or %q, got %q",
			DriverMemory, DriverRedis, DriverValkey, c.Catalog.Driver)
	}

	s := c.Classifier.Semantic
	if !s.Enabled {
		return nil
	}
	if s.APIKey == "" {
		return errors.New("classifier.semantic.api_key is required when the semantic classifier is enabled")
	}
	if s.MinSimilarity > 1 {
		return fmt.Errorf("classifier.semantic.min_similarity must be in (0,1], got %g", s.MinSimilarity)
	}
	switch s.Budget.Action {
	case "", "warn", "reject":
	default:
		return fmt.Errorf("classifier.semantic.budget.action must be \"warn\" or \"reject\", got %q", s.Budget.Action)
	}
	if (s.Cache.Enabled || s.Budget.Enabled()) && !c.Catalog.UsesStore() {
		return errors.New("classifier.semantic cache and budget need a redis or valkey catalog driver")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// relative to this source file, for tests and `go run`
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// envVarRegex matches ${VAR} and ${VAR:-default}.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
