package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can take miniredis-backed
// clients in tests
type Client interface {
	redis.UniversalClient
}
