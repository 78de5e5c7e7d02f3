package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache: miss")

type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

// NoOpCache stores nothing; every Get is a miss.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NoOpCache) Get(context.Context, string) (string, error) { return "", ErrMiss }

func (NoOpCache) Del(context.Context, string) error { return nil }

func (NoOpCache) Ping(context.Context) error { return nil }

func (NoOpCache) Close() error { return nil }
