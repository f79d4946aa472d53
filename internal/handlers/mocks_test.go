package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

// MockStatsService implements StatsService for testing
type MockStatsService struct {
	FetchPlayerStatsFunc func(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error)
	LeaderboardFunc      func(ctx context.Context, region string) ([]models.LeaderboardEntry, error)
}

func (m *MockStatsService) FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error) {
	if m.FetchPlayerStatsFunc != nil {
		return m.FetchPlayerStatsFunc(ctx, searchID, id, q)
	}
	return &models.PlayerStats{SearchID: searchID}, nil
}

func (m *MockStatsService) Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, region)
	}
	return nil, nil
}

// MockForwarder implements Forwarder for testing
type MockForwarder struct {
	HasKey  bool
	GetFunc func(ctx context.Context, endpoint string) (*gateway.Response, error)
	Calls   []string
}

func (m *MockForwarder) Configured() bool { return m.HasKey }

func (m *MockForwarder) Get(ctx context.Context, endpoint string) (*gateway.Response, error) {
	m.Calls = append(m.Calls, endpoint)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, endpoint)
	}
	return &gateway.Response{Status: http.StatusOK, Body: []byte(`{}`)}, nil
}

func newTestHandler(stats StatsService, upstream Forwarder) *Handler {
	return New(Config{
		Stats:    stats,
		Upstream: upstream,
		Logger:   zap.NewNop(),
		PageSize: 5,
	})
}

// serve routes a request through the full router so URL params and
// middleware behave as in production.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Routes(RouterConfig{AllowedOrigins: []string{"*"}}).ServeHTTP(w, req)
	return w
}
