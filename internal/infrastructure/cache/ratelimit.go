package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter decides whether a request identified by key may proceed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	// Limit is the number of requests allowed per window
	Limit() int
}

// InMemoryRateLimiter keeps one token bucket per key.
// Buckets refill at limit/window and hold at most limit tokens.
type InMemoryRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*bucket
	limit    int
	every    rate.Limit
	window   time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewInMemoryRateLimiter creates a per-key token bucket limiter
func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &InMemoryRateLimiter{
		limiters: make(map[string]*bucket),
		limit:    limit,
		every:    rate.Every(window / time.Duration(limit)),
		window:   window,
	}
}

// Allow takes one token from the key's bucket
func (l *InMemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.limiters[key]
	if !ok {
		l.evictLocked(now)
		b = &bucket{limiter: rate.NewLimiter(l.every, l.limit)}
		l.limiters[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1), nil
}

// Limit returns the burst size
func (l *InMemoryRateLimiter) Limit() int {
	return l.limit
}

// evictLocked drops buckets idle for two windows; a full bucket behaves like a new one
func (l *InMemoryRateLimiter) evictLocked(now time.Time) {
	for key, b := range l.limiters {
		if now.Sub(b.lastSeen) > 2*l.window {
			delete(l.limiters, key)
		}
	}
}

// slidingWindowScript trims the window, counts it and records the request if under limit.
// KEYS[1]=key ARGV[1]=now(ms) ARGV[2]=window start(ms) ARGV[3]=window(s) ARGV[4]=member ARGV[5]=limit
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowSec = tonumber(ARGV[3])
local member = ARGV[4]
local limit = tonumber(ARGV[5])

redis.call('ZREMRANGEBYSCORE', key, '0', windowStart)
local count = redis.call('ZCARD', key)
if count < limit then
  redis.call('ZADD', key, now, member)
  redis.call('EXPIRE', key, windowSec)
  return count + 1
end
return -1
`

// RedisRateLimiter is a sliding window limiter shared by every server instance
type RedisRateLimiter struct {
	client    redis.UniversalClient
	script    *redis.Script
	limit     int
	window    time.Duration
	keyPrefix string
}

// NewRedisRateLimiter creates a sliding window limiter on an existing client
func NewRedisRateLimiter(client redis.UniversalClient, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:    client,
		script:    redis.NewScript(slidingWindowScript),
		limit:     limit,
		window:    window,
		keyPrefix: "garage:ratelimit:",
	}
}

// Allow records the request when the window still has room
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowSec := int64(l.window.Seconds())
	if windowSec < 1 {
		windowSec = 1
	}
	start := now.Add(-l.window).UnixMilli()
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	res, err := l.script.Run(ctx, l.client, []string{l.keyPrefix + key},
		now.UnixMilli(), start, windowSec, member, l.limit).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit script: %w", err)
	}
	return res >= 0, nil
}

// Limit returns the number of requests allowed per window
func (l *RedisRateLimiter) Limit() int {
	return l.limit
}

var (
	_ RateLimiter = (*InMemoryRateLimiter)(nil)
	_ RateLimiter = (*RedisRateLimiter)(nil)
)
