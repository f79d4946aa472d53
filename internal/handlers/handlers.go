package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// StatsService produces the data behind the player and leaderboard pages.
type StatsService interface {
	FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error)
	Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error)
}

// Forwarder injects the API key into proxied upstream requests.
type Forwarder interface {
	Configured() bool
	Get(ctx context.Context, endpoint string) (*gateway.Response, error)
}

// WarmQueue is the leaderboard warmer as seen by the readiness check.
type WarmQueue interface {
	QueueDepth() int
}

type Config struct {
	Stats    StatsService
	Upstream Forwarder
	Redis    *redis.Client
	Warmer   WarmQueue
	Logger   *zap.Logger
	// PageSize is the match-history size used when a request does not set one.
	PageSize int
}

type Handler struct {
	stats     StatsService
	upstream  Forwarder
	redis     *redis.Client
	warmer    WarmQueue
	logger    *zap.SugaredLogger
	validator *validator.Validate
	pageSize  int
}

func New(cfg Config) *Handler {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Handler{
		stats:     cfg.Stats,
		upstream:  cfg.Upstream,
		redis:     cfg.Redis,
		warmer:    cfg.Warmer,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		pageSize:  pageSize,
	}
}
