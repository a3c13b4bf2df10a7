package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every backend in this module accepts.
// Any *redis.Client, *redis.ClusterClient or redismock client satisfies it.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
