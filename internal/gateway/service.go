package gateway

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

// Service assembles the result set of one player search.
type Service struct {
	gateway Gateway
	logger  *zap.SugaredLogger
}

func NewService(g Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: g, logger: logger.Sugar()}
}

// FetchPlayerStats resolves the account first, then loads rank and match
// history in parallel. Rank and matches degrade independently: a failed
// rank lookup leaves MMR nil and a failed history lookup leaves an empty
// page. Only the account lookup can fail the search.
func (s *Service) FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q MatchQuery) (*models.PlayerStats, error) {
	account, err := s.gateway.Account(ctx, id.Name, id.Tag)
	if err != nil {
		return nil, fmt.Errorf("fetch account %s: %w", id, err)
	}

	region := strings.ToLower(account.Region)
	if region == "" {
		region = logic.DefaultRegion
	}

	stats := &models.PlayerStats{
		SearchID: searchID,
		Account:  account,
		Matches:  []models.MatchRecord{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mmr, err := s.gateway.MMR(gctx, region, id.Name, id.Tag)
		if err != nil {
			s.logger.Warnw("Rank unavailable", "player", id.String(), "region", region, "error", err)
			return nil
		}
		stats.MMR = mmr
		return nil
	})

	g.Go(func() error {
		matches, err := s.gateway.Matches(gctx, region, id.Name, id.Tag, q)
		if err != nil {
			s.logger.Warnw("Match history unavailable", "player", id.String(), "region", region, "error", err)
			return nil
		}
		if matches != nil {
			stats.Matches = matches
		}
		return nil
	})

	_ = g.Wait()

	// An abandoned search must not surface a half-degraded result.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Leaderboard returns the ranked players of a known region.
func (s *Service) Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error) {
	entries, err := s.gateway.Leaderboard(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard %s: %w", region, err)
	}
	return entries, nil
}
