package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/supremehato/valorant-vision/internal/models"
)

// Client implements Gateway over a Transport.
type Client struct {
	transport Transport
	logger    *zap.SugaredLogger
}

func NewClient(transport Transport, logger *zap.Logger) *Client {
	return &Client{transport: transport, logger: logger.Sugar()}
}

// Account looks up a Riot ID. A 404 yields ErrNotFound.
func (c *Client) Account(ctx context.Context, name, tag string) (models.Account, error) {
	endpoint := fmt.Sprintf("/v1/account/%s/%s", url.PathEscape(name), url.PathEscape(tag))

	body, err := c.fetch(ctx, kindAccount, endpoint)
	if err != nil {
		return models.Account{}, err
	}

	env, err := decode[models.APIAccount](body)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: decode account: %w", ErrUnavailable, err)
	}
	if env.HasErrors() || env.Data.PUUID == "" {
		return models.Account{}, ErrNotFound
	}
	return models.NormalizeAccount(env.Data), nil
}

// MMR returns the rank record for an account.
func (c *Client) MMR(ctx context.Context, region, name, tag string) (*models.MMR, error) {
	endpoint := fmt.Sprintf("/v3/mmr/%s/pc/%s/%s", url.PathEscape(region), url.PathEscape(name), url.PathEscape(tag))

	body, err := c.fetch(ctx, kindMMR, endpoint)
	if err != nil {
		return nil, err
	}

	env, err := decode[models.APIMMR](body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode mmr: %w", ErrUnavailable, err)
	}
	if env.HasErrors() {
		return nil, fmt.Errorf("%w: mmr response carried errors", ErrUnavailable)
	}
	mmr := models.NormalizeMMR(env.Data)
	return &mmr, nil
}

// Matches returns one page of match history. Malformed records are dropped.
func (c *Client) Matches(ctx context.Context, region, name, tag string, q MatchQuery) ([]models.MatchRecord, error) {
	params := url.Values{}
	params.Set("size", strconv.Itoa(q.Size))
	if q.Mode != "" {
		params.Set("mode", q.Mode)
	}
	endpoint := fmt.Sprintf("/v4/matches/%s/pc/%s/%s?%s",
		url.PathEscape(region), url.PathEscape(name), url.PathEscape(tag), params.Encode())

	body, err := c.fetch(ctx, kindMatches, endpoint)
	if err != nil {
		return nil, err
	}

	env, err := decode[[]json.RawMessage](body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode matches: %w", ErrUnavailable, err)
	}

	// Records are decoded one by one so a single mistyped match is dropped
	// instead of failing the page.
	page := make([]models.APIMatch, 0, len(env.Data))
	undecodable := 0
	for _, item := range env.Data {
		var m models.APIMatch
		if err := json.Unmarshal(item, &m); err != nil {
			undecodable++
			continue
		}
		page = append(page, m)
	}

	matches, dropped := models.NormalizeMatches(page)
	dropped += undecodable
	if dropped > 0 {
		matchesDropped.Add(float64(dropped))
		c.logger.Debugw("Dropped malformed matches", "player", name+"#"+tag, "dropped", dropped, "kept", len(matches))
	}
	return matches, nil
}

// Leaderboard returns the ranked players of a region. The player array is
// located under data.players, players, or data itself; anything else means
// the leaderboard is not available.
func (c *Client) Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error) {
	endpoint := fmt.Sprintf("/v3/leaderboard/%s/pc", url.PathEscape(region))

	body, err := c.fetch(ctx, kindLeaderboard, endpoint)
	if err != nil {
		return nil, err
	}

	if errs := gjson.GetBytes(body, "errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return nil, ErrNotFound
	}

	players := gjson.GetBytes(body, "data.players")
	if !players.IsArray() {
		players = gjson.GetBytes(body, "players")
	}
	if !players.IsArray() {
		players = gjson.GetBytes(body, "data")
	}
	if !players.IsArray() {
		return nil, ErrNotFound
	}

	var raw []models.APILeaderboardPlayer
	if err := json.Unmarshal([]byte(players.Raw), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode leaderboard: %w", ErrUnavailable, err)
	}
	return models.NormalizeLeaderboard(raw), nil
}

// fetch performs the request and maps the status: 404 becomes ErrNotFound,
// any other non-2xx becomes ErrUnavailable.
func (c *Client) fetch(ctx context.Context, kind, endpoint string) ([]byte, error) {
	start := time.Now()
	resp, err := c.transport.Get(ctx, endpoint)
	upstreamDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		upstreamRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%w: %s request: %w", ErrUnavailable, kind, err)
	}

	switch {
	case resp.Status == http.StatusNotFound:
		upstreamRequests.WithLabelValues(kind, "not_found").Inc()
		return nil, ErrNotFound
	case resp.Status < 200 || resp.Status > 299:
		upstreamRequests.WithLabelValues(kind, "error").Inc()
		c.logger.Warnw("Upstream returned an error status",
			"kind", kind,
			"status", resp.Status,
			"body", truncate(string(resp.Body), 200),
		)
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUnavailable, kind, resp.Status)
	}

	upstreamRequests.WithLabelValues(kind, "ok").Inc()
	return resp.Body, nil
}

func decode[T any](body []byte) (models.Envelope[T], error) {
	var env models.Envelope[T]
	err := json.Unmarshal(body, &env)
	return env, err
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
