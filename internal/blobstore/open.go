package blobstore

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/redis"
)

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Backends lists every supported backend
var Backends = []string{BackendMemory, BackendRedis, BackendPostgres, BackendSQLite}

// OpenConfig selects and configures a backend
type OpenConfig struct {
	Backend     string
	KeyPrefix   string
	RedisClient redis.Client
	PostgresDSN string
	SQLitePath  string
}

// Validate checks that the chosen backend has what it needs
func (c *OpenConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Backend", c.Backend, Backends, vb)
	switch c.Backend {
	case BackendRedis:
		if c.RedisClient == nil {
			vb.RequiredField("RedisClient")
		}
	case BackendPostgres:
		errors.ValidateRequired("PostgresDSN", c.PostgresDSN, vb)
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// Open builds the configured store. The returned close function releases any
// connection the store owns; a shared Redis client is left open.
func Open(ctx context.Context, cfg *OpenConfig) (Store, func() error, error) {
	if cfg == nil {
		return nil, nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid storage config")
	}

	noop := func() error { return nil }

	slog.Info("Opening blob store", "backend", cfg.Backend)
	switch cfg.Backend {
	case BackendRedis:
		store, err := NewRedis(&RedisConfig{Client: cfg.RedisClient, KeyPrefix: cfg.KeyPrefix})
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case BackendPostgres:
		store, err := NewPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case BackendSQLite:
		store, err := NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return NewMemory(), noop, nil
	}
}
