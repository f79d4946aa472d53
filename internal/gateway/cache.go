package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/supremehato/valorant-vision/internal/models"
)

const cachePrefix = "valorant:"

// sharedFetchTimeout bounds an upstream fetch shared by concurrent misses.
const sharedFetchTimeout = 30 * time.Second

// Cache is the subset of *redis.Client the read-through cache needs.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CacheTTL holds per-entry expirations.
type CacheTTL struct {
	Account     time.Duration
	MMR         time.Duration
	Matches     time.Duration
	Leaderboard time.Duration
}

// CachedGateway is a read-through Redis cache in front of another Gateway.
// The cache is ephemeral: Redis errors are logged and the call falls through
// to the upstream. Errors are never cached. Concurrent misses for the same
// key share one upstream call.
type CachedGateway struct {
	next   Gateway
	cache  Cache
	ttl    CacheTTL
	group  singleflight.Group
	logger *zap.SugaredLogger
}

func NewCachedGateway(next Gateway, cache Cache, ttl CacheTTL, logger *zap.Logger) *CachedGateway {
	return &CachedGateway{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func (g *CachedGateway) Account(ctx context.Context, name, tag string) (models.Account, error) {
	key := cacheKey(kindAccount, name, tag)
	return cached(ctx, g, kindAccount, key, g.ttl.Account, func(ctx context.Context) (models.Account, error) {
		return g.next.Account(ctx, name, tag)
	})
}

func (g *CachedGateway) MMR(ctx context.Context, region, name, tag string) (*models.MMR, error) {
	key := cacheKey(kindMMR, region, name, tag)
	return cached(ctx, g, kindMMR, key, g.ttl.MMR, func(ctx context.Context) (*models.MMR, error) {
		return g.next.MMR(ctx, region, name, tag)
	})
}

func (g *CachedGateway) Matches(ctx context.Context, region, name, tag string, q MatchQuery) ([]models.MatchRecord, error) {
	key := cacheKey(kindMatches, region, name, tag, strconv.Itoa(q.Size), q.Mode)
	return cached(ctx, g, kindMatches, key, g.ttl.Matches, func(ctx context.Context) ([]models.MatchRecord, error) {
		return g.next.Matches(ctx, region, name, tag, q)
	})
}

func (g *CachedGateway) Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error) {
	key := cacheKey(kindLeaderboard, region)
	return cached(ctx, g, kindLeaderboard, key, g.ttl.Leaderboard, func(ctx context.Context) ([]models.LeaderboardEntry, error) {
		return g.next.Leaderboard(ctx, region)
	})
}

// RefreshLeaderboard fetches a region's leaderboard and overwrites the
// cached copy regardless of its remaining TTL.
func (g *CachedGateway) RefreshLeaderboard(ctx context.Context, region string) error {
	entries, err := g.next.Leaderboard(ctx, region)
	if err != nil {
		return fmt.Errorf("refresh leaderboard %s: %w", region, err)
	}
	g.store(ctx, cacheKey(kindLeaderboard, region), entries, g.ttl.Leaderboard)
	return nil
}

func cached[T any](ctx context.Context, g *CachedGateway, kind, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := g.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			cacheLookups.WithLabelValues(kind, "hit").Inc()
			return v, nil
		}
		g.logger.Warnw("Discarding undecodable cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		g.logger.Warnw("Cache read failed", "key", key, "error", err)
	}
	cacheLookups.WithLabelValues(kind, "miss").Inc()

	// The shared fetch outlives any single caller: cancelling one search
	// abandons only that caller's wait.
	ch := g.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()

		v, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		g.store(fetchCtx, key, v, ttl)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (g *CachedGateway) store(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		g.logger.Warnw("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := g.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		g.logger.Warnw("Failed to cache entry", "key", key, "error", err)
	}
}

func cacheKey(kind string, parts ...string) string {
	return cachePrefix + kind + ":" + strings.ToLower(strings.Join(parts, ":"))
}
