package blobstore

import (
	"context"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/redis"
)

// RedisConfig configures the Redis-backed store
type RedisConfig struct {
	Client    redis.Client
	KeyPrefix string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type redisStore struct {
	client redis.Client
	prefix string
}

// NewRedis creates a store that keeps each namespace under "<prefix>:<namespace>"
func NewRedis(cfg *RedisConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisStore{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	if err := validNamespace(namespace); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, redis.Key(r.prefix, namespace)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read namespace %s", namespace)
	}
	return data, nil
}

func (r *redisStore) Save(ctx context.Context, namespace string, data []byte) error {
	if err := validNamespace(namespace); err != nil {
		return err
	}

	if err := r.client.Set(ctx, redis.Key(r.prefix, namespace), data, 0).Err(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write namespace %s", namespace)
	}
	return nil
}
