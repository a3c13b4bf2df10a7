// Package config loads server configuration from an optional YAML file and
// environment overrides.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/clients/draft"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/search"
)

// Catalog backends
const (
	CatalogMemory = "memory"
	CatalogRedis  = "redis"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PVMHUB_"

var (
	catalogBackends = []string{CatalogMemory, CatalogRedis}
	logLevels       = []string{"debug", "info", "warn", "error"}
	logFormats      = []string{"text", "json"}
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Draft   DraftConfig   `yaml:"draft"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	GRPCPort        int           `yaml:"grpc_port"`
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig selects the blob store behind presets and guides
type StorageConfig struct {
	Backend   string         `yaml:"backend"`
	KeyPrefix string         `yaml:"key_prefix"`
	Redis     RedisConfig    `yaml:"redis"`
	Postgres  PostgresConfig `yaml:"postgres"`
	SQLite    SQLiteConfig   `yaml:"sqlite"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
	MaxRetries   int    `yaml:"max_retries"`
	UseTLS       bool   `yaml:"use_tls"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig selects the item catalog. The redis catalog shares the
// storage Redis connection.
type CatalogConfig struct {
	Backend string `yaml:"backend"`
	// Latency is added to every in-memory lookup
	Latency     time.Duration `yaml:"latency"`
	SeedOnStart bool          `yaml:"seed_on_start"`
}

type SearchConfig struct {
	QuietPeriod time.Duration `yaml:"quiet_period"`
}

// DraftConfig configures the guide draft generator. An empty APIKey leaves
// drafting disabled; requests then fail with a not-configured reason.
type DraftConfig struct {
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	Model           string        `yaml:"model"`
	Temperature     float64       `yaml:"temperature"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	Timeout         time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPAddr:        ":8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Backend:   blobstore.BackendMemory,
			KeyPrefix: "pvmhub",
			Redis: RedisConfig{
				Addr:         "localhost:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				MaxRetries:   3,
			},
			SQLite: SQLiteConfig{Path: "pvmhub.db"},
		},
		Catalog: CatalogConfig{
			Backend:     CatalogMemory,
			SeedOnStart: true,
		},
		Search: SearchConfig{
			QuietPeriod: search.DefaultQuietPeriod,
		},
		Draft: DraftConfig{
			BaseURL:         draft.DefaultBaseURL,
			Model:           draft.DefaultModel,
			Temperature:     draft.DefaultTemperature,
			MaxOutputTokens: draft.DefaultMaxOutputTokens,
			Timeout:         draft.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Debug("Config file not found, using defaults", "path", path)
		case err != nil:
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment. GEMINI_API_KEY wins over API_KEY.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var firstErr error
	num := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			if firstErr == nil {
				firstErr = errors.InvalidArgumentf("%s%s must be an integer, got %q", EnvPrefix, name, v)
			}
			return
		}
		*dst = n
	}
	dur := func(name string, dst *time.Duration) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			if firstErr == nil {
				firstErr = errors.InvalidArgumentf("%s%s must be a duration, got %q", EnvPrefix, name, v)
			}
			return
		}
		*dst = d
	}

	num("GRPC_PORT", &c.Server.GRPCPort)
	str("HTTP_ADDR", &c.Server.HTTPAddr)
	dur("SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)

	str("STORAGE_BACKEND", &c.Storage.Backend)
	str("KEY_PREFIX", &c.Storage.KeyPrefix)
	str("REDIS_ADDR", &c.Storage.Redis.Addr)
	str("REDIS_PASSWORD", &c.Storage.Redis.Password)
	num("REDIS_DB", &c.Storage.Redis.DB)
	str("POSTGRES_DSN", &c.Storage.Postgres.DSN)
	str("SQLITE_PATH", &c.Storage.SQLite.Path)

	str("CATALOG_BACKEND", &c.Catalog.Backend)
	dur("CATALOG_LATENCY", &c.Catalog.Latency)
	dur("SEARCH_QUIET_PERIOD", &c.Search.QuietPeriod)

	str("DRAFT_MODEL", &c.Draft.Model)
	str("DRAFT_BASE_URL", &c.Draft.BaseURL)
	for _, name := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if v, ok := lookup(name); ok && v != "" {
			c.Draft.APIKey = v
		}
	}

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)

	return firstErr
}

// Validate checks ranges and that the selected backends are configured
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("server.http_addr", c.Server.HTTPAddr, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	errors.ValidateEnum("storage.backend", c.Storage.Backend, blobstore.Backends, vb)
	switch c.Storage.Backend {
	case blobstore.BackendPostgres:
		errors.ValidateRequired("storage.postgres.dsn", c.Storage.Postgres.DSN, vb)
	case blobstore.BackendSQLite:
		errors.ValidateRequired("storage.sqlite.path", c.Storage.SQLite.Path, vb)
	}
	if c.UsesRedis() {
		errors.ValidateRequired("storage.redis.addr", c.Storage.Redis.Addr, vb)
	}

	errors.ValidateEnum("catalog.backend", c.Catalog.Backend, catalogBackends, vb)
	if c.Catalog.Latency < 0 {
		vb.Field("catalog.latency", "must not be negative")
	}
	if c.Search.QuietPeriod < 0 {
		vb.Field("search.quiet_period", "must not be negative")
	}

	if c.Draft.Temperature < 0 || c.Draft.Temperature > 2 {
		vb.Field("draft.temperature", "must be between 0 and 2")
	}
	if c.Draft.MaxOutputTokens < 0 {
		vb.Field("draft.max_output_tokens", "must not be negative")
	}

	errors.ValidateEnum("log.level", c.Log.Level, logLevels, vb)
	errors.ValidateEnum("log.format", c.Log.Format, logFormats, vb)

	return vb.Build()
}

// UsesRedis reports whether storage or the catalog needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Storage.Backend == blobstore.BackendRedis || c.Catalog.Backend == CatalogRedis
}

// SlogLevel maps the configured level name onto slog
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DraftClientConfig converts the draft section for draft.New
func (c *Config) DraftClientConfig() *draft.Config {
	temperature := c.Draft.Temperature
	return &draft.Config{
		APIKey:          c.Draft.APIKey,
		BaseURL:         c.Draft.BaseURL,
		Model:           c.Draft.Model,
		Temperature:     &temperature,
		MaxOutputTokens: c.Draft.MaxOutputTokens,
		Timeout:         c.Draft.Timeout,
	}
}
