// Package redis provides a wrapper around the go-redis client library
// for the profile store.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	DB          int
}

// NewClient creates a Redis client for a single instance.
// Redis connects lazily; use Ping to check the server.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}), nil
}

// Ping reports whether the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
