package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Cache is the contract the service layer composes its cache-aside reads
// and write-invalidations against.
//
// Get reports a miss (false) for both an absent key and any backend fault;
// callers never distinguish the two. Set and Invalidate never return an
// error: failures are logged by the implementation and otherwise ignored,
// because a failed population or invalidation only costs a later cache
// miss or a bounded window of staleness within the entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
	Ping(ctx context.Context) error
}

// redisCache is the Redis-backed implementation of [Cache].
type redisCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCache dials Redis using the provided configuration and returns a
// [Cache] backed by it. The dial timeout is deliberately short so that a
// cache outage fails fast into the miss path instead of stalling requests.
//
// The connection is verified with a ping; a dead backend at startup is an
// error here, while a backend that dies later degrades to misses at
// request time.
func NewRedisCache(ctx context.Context, cfg config.Redis, log *logger.Logger) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DialTimeout: cfg.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Info().Str("addr", client.Options().Addr).Msg("connected to redis successfully")

	return &redisCache{
		client: client,
		logger: log,
	}, nil
}

// Get retrieves the raw value stored under key. A backend fault is logged
// and reported as a miss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	log := logger.FromContext(ctx)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			CacheErrors.WithLabelValues("get").Inc()
			log.Warn().Err(err).Str("key", key).Msg("cache get failed, degrading to miss")
		}
		CacheMisses.Inc()
		return nil, false
	}

	CacheHits.WithLabelValues(keyClass(key)).Inc()
	return data, true
}

// Set stores value under key with the given TTL. Failures are logged and
// swallowed.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	log := logger.FromContext(ctx)

	if ttl <= 0 {
		return
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Invalidate removes the given keys unconditionally. Failures are logged
// and swallowed; a missed invalidation degrades to serving a stale entry
// for at most one TTL.
func (c *redisCache) Invalidate(ctx context.Context, keys ...string) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		CacheErrors.WithLabelValues("invalidate").Inc()
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidate failed")
	}
}

// Ping probes the backend for the health endpoint.
func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// keyClass extracts the entity-class tag from a cache key ("users:all" →
// "users", "product:7" → "product") for metric labelling.
func keyClass(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
