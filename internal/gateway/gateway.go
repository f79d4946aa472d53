// Package gateway fetches account, rank, match-history and leaderboard data
// from the Henrik stats API, either directly or through the key-injecting
// proxy, and normalizes the payloads at the boundary.
package gateway

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/supremehato/valorant-vision/internal/models"
)

var (
	// ErrNotFound means the upstream has no such account or leaderboard.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable wraps transport failures and unexpected upstream replies.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMissingAPIKey is returned by the direct transport when no key is configured.
	ErrMissingAPIKey = errors.New("API key not configured")
)

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valorant_upstream_requests_total",
		Help: "Upstream stats API requests by endpoint kind and outcome",
	}, []string{"kind", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valorant_upstream_request_duration_seconds",
		Help:    "Latency of upstream stats API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	matchesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "valorant_matches_dropped_total",
		Help: "Match records skipped during normalization because sections were missing",
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valorant_cache_lookups_total",
		Help: "Cache lookups by entry kind and result",
	}, []string{"kind", "result"})
)

const (
	kindAccount     = "account"
	kindMMR         = "mmr"
	kindMatches     = "matches"
	kindLeaderboard = "leaderboard"
)

// MatchQuery selects a page of match history.
type MatchQuery struct {
	// Size is the number of matches requested (1..100).
	Size int
	// Mode optionally narrows the page upstream. Empty requests every mode.
	Mode string
}

// Gateway is the typed view of the upstream API.
type Gateway interface {
	Account(ctx context.Context, name, tag string) (models.Account, error)
	MMR(ctx context.Context, region, name, tag string) (*models.MMR, error)
	Matches(ctx context.Context, region, name, tag string, q MatchQuery) ([]models.MatchRecord, error)
	Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error)
}
