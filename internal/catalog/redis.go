package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/redis"
)

const (
	itemsKey = "catalog:items"
	indexKey = "catalog:index"
)

// RedisConfig configures the Redis-backed catalog
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

type redisCatalog struct {
	client   redis.Client
	itemsKey string
	indexKey string
}

// NewRedis creates a catalog read from Redis. Items live in a list, which fixes
// catalog order, and in a hash keyed by item id for lookups.
func NewRedis(cfg *RedisConfig) (Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisCatalog{
		client:   cfg.Client,
		itemsKey: redis.Key(cfg.KeyPrefix, itemsKey),
		indexKey: redis.Key(cfg.KeyPrefix, indexKey),
	}, nil
}

// Search loads the full list and filters it
func (c *redisCatalog) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	raw, err := c.client.LRange(ctx, c.itemsKey, 0, -1).Result()
	if err != nil {
		return nil, c.failure(ctx, err)
	}

	items := make([]gear.Item, 0, len(raw))
	for _, data := range raw {
		var item gear.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, errors.CatalogUnavailable(err)
		}
		items = append(items, item)
	}

	return &SearchOutput{Items: Filter(items, input)}, nil
}

// Get reads one item from the index hash
func (c *redisCatalog) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	data, err := c.client.HGet(ctx, c.indexKey, input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ID)
		}
		return nil, c.failure(ctx, err)
	}

	var item gear.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, errors.CatalogUnavailable(err)
	}

	return &GetOutput{Item: item}, nil
}

func (c *redisCatalog) failure(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.FromContext(ctx.Err(), "catalog request abandoned")
	}
	slog.WarnContext(ctx, "Catalog read failed", "error", err)
	return errors.CatalogUnavailable(err)
}

// Seed replaces the catalog stored under keyPrefix with items, atomically.
func Seed(ctx context.Context, client redis.Client, keyPrefix string, items []gear.Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}

	listKey := redis.Key(keyPrefix, itemsKey)
	hashKey := redis.Key(keyPrefix, indexKey)

	list := make([]any, 0, len(items))
	index := make(map[string]any, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return errors.Wrapf(err, "failed to encode item %s", item.ID)
		}
		list = append(list, data)
		index[item.ID] = data
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, listKey, hashKey)
	if len(items) > 0 {
		pipe.RPush(ctx, listKey, list...)
		pipe.HSet(ctx, hashKey, index)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to seed catalog")
	}

	slog.Info("Catalog seeded", "items", len(items), "key", listKey)
	return nil
}
