package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tubeplan/pkg/metrics"
)

const DefaultCacheTTL = 6 * time.Hour

type cached struct {
	inner Searcher
	rdb   *redis.Client
	ttl   time.Duration
	m     *metrics.Metrics
}

// NewCached wraps inner with a redis cache-aside layer. A nil client returns inner unchanged.
func NewCached(inner Searcher, rdb *redis.Client, ttl time.Duration, m *metrics.Metrics) Searcher {
	if rdb == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cached{inner: inner, rdb: rdb, ttl: ttl, m: m}
}

func cacheKey(query string, max int) string {
	return fmt.Sprintf("tubeplan:yt:search:%d:%s", max, strings.ToLower(strings.TrimSpace(query)))
}

func (c *cached) Search(ctx context.Context, query string, max int) ([]Video, error) {
	key := cacheKey(query, max)
	// Any read error, redis.Nil included, falls through to the source.
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out []Video
		if json.Unmarshal(data, &out) == nil {
			c.m.CacheHit()
			return out, nil
		}
	}
	c.m.CacheMiss()

	out, err := c.inner.Search(ctx, query, max)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}
