package cache

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Factory builds the Redis-backed stores when a client is available and the
// in-memory ones otherwise
type Factory struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory creates a factory. client may be nil.
func NewFactory(client redis.UniversalClient, opts ...FactoryOption) *Factory {
	f := &Factory{
		client: client,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HasRedis reports whether the factory hands out Redis-backed stores
func (f *Factory) HasRedis() bool {
	return f.client != nil
}

// IdempotencyStore creates the idempotency store for checkout and walk-in sales
func (f *Factory) IdempotencyStore() shared.IdempotencyStore {
	if f.client != nil {
		f.logger.Info("using Redis idempotency store")
		return NewRedisIdempotencyStore(f.client, "")
	}
	f.logger.Warn("Redis disabled, using in-memory idempotency store; retries are not deduplicated across instances")
	return NewInMemoryIdempotencyStore()
}

// RateLimiter creates a limiter allowing limit requests per window per key
func (f *Factory) RateLimiter(limit int, window time.Duration) RateLimiter {
	if f.client != nil {
		return NewRedisRateLimiter(f.client, limit, window)
	}
	return NewInMemoryRateLimiter(limit, window)
}
