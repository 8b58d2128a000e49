package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheDisabled is returned by [nopCache.Ping] so the health endpoint
// can report the cache layer as unavailable.
var ErrCacheDisabled = errors.New("cache disabled")

// nopCache is the always-miss implementation used when no Redis backend is
// configured or the initial connection fails. It keeps the rest of the
// pipeline oblivious to whether a cache exists at all.
type nopCache struct{}

// NewNopCache returns a [Cache] that never hits and never stores.
func NewNopCache() Cache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (nopCache) Set(context.Context, string, []byte, time.Duration) {}

func (nopCache) Invalidate(context.Context, ...string) {}

func (nopCache) Ping(context.Context) error { return ErrCacheDisabled }
