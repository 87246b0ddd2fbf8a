package respcache

import (
	"context"
	"errors"
	"time"

	perr "navline/internal/platform/errors"
	"navline/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Redis stores entries with SET EX and lets redis own expiry
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis parses url, connects and pings once with a short deadline
func NewRedis(ctx context.Context, url, prefix string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse redis url")
	}
	r := NewRedisClient(redis.NewClient(opts), prefix, ttl)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(pctx); err != nil {
		_ = r.Close()
		return nil, err
	}
	logger.Named("respcache").Info().Str("addr", opts.Addr).Msg("redis cache connected")
	return r, nil
}

// NewRedisClient wraps an existing client
func NewRedisClient(c *redis.Client, prefix string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: c, ttl: ttl, prefix: prefix}
}

// Get returns the value, or a miss on absence or any backend error
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.C(ctx).Warn().Err(err).Msg("redis cache get failed, treating as miss")
		}
		return nil, false
	}
	return b, true
}

// Set writes value with the cache TTL; failures are logged and dropped
func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("redis cache set failed")
	}
}

// Ping checks connectivity
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "redis ping")
	}
	return nil
}

// Close releases the connection pool
func (r *Redis) Close() error { return r.client.Close() }
