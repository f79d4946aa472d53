// Command lookup is a terminal client for player and leaderboard lookups.
// It runs the same gateway and aggregation code as the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/supremehato/valorant-vision/internal/config"
	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

// statsService is the part of gateway.Service the commands use.
type statsService interface {
	FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error)
	Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error)
}

func main() {
	app := &cli.App{
		Name:  "lookup",
		Usage: "Look up Valorant players and leaderboards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Henrik API key",
				EnvVars: []string{"HENRIK_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "proxy-url",
				Usage:   "Key-injecting proxy used when no API key is set",
				EnvVars: []string{"PROXY_URL"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   config.DefaultHenrikBaseURL,
				Usage:   "Upstream API base URL",
				EnvVars: []string{"HENRIK_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Optional Redis cache",
				EnvVars: []string{"REDIS_URL"},
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Value:   5,
				Usage:   "Number of matches to fetch (1-100)",
				EnvVars: []string{"MATCH_PAGE_SIZE"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   10 * time.Second,
				Usage:   "Upstream request timeout",
				EnvVars: []string{"UPSTREAM_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log gateway activity to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "player",
				Usage:     "Show a player's rank, matches and aggregates",
				ArgsUsage: "Name#Tag",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: logic.ModeAll, Usage: "Match mode filter"},
					&cli.StringFlag{Name: "match", Usage: "Match id to show the scoreboard for"},
				},
				Action: playerCommand,
			},
			{
				Name:  "leaderboard",
				Usage: "Show the top 100 of a region",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "region",
						Aliases: []string{"r"},
						Value:   logic.DefaultRegion,
						Usage:   "One of " + strings.Join(logic.RegionValues(), ", "),
					},
				},
				Action: leaderboardCommand,
			},
			{
				Name:   "interactive",
				Usage:  "Read Riot IDs and view commands from stdin",
				Action: interactiveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}
}

// newService builds the gateway stack from the global flags.
func newService(c *cli.Context) (*gateway.Service, func(), error) {
	size := c.Int("size")
	if size < 1 || size > 100 {
		return nil, nil, fmt.Errorf("--size must be between 1 and 100, got %d", size)
	}
	apiKey, proxyURL := c.String("api-key"), c.String("proxy-url")
	if apiKey == "" && proxyURL == "" {
		return nil, nil, fmt.Errorf("set --api-key or --proxy-url")
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		logger = l
	}

	httpClient := gateway.NewHTTPClient(c.Duration("timeout"))
	var transport gateway.Transport = gateway.NewUpstream(strings.TrimRight(c.String("base-url"), "/"), apiKey, httpClient)
	if apiKey == "" {
		transport = gateway.NewProxyTransport(proxyURL, httpClient)
	}

	var g gateway.Gateway = gateway.NewClient(transport, logger)
	cleanup := func() { _ = logger.Sync() }

	if u := c.String("redis-url"); u != "" {
		opts, err := redis.ParseURL(u)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --redis-url: %w", err)
		}
		rdb := redis.NewClient(opts)
		g = gateway.NewCachedGateway(g, rdb, gateway.CacheTTL{
			Account:     time.Hour,
			MMR:         5 * time.Minute,
			Matches:     2 * time.Minute,
			Leaderboard: 10 * time.Minute,
		}, logger)
		cleanup = func() {
			_ = rdb.Close()
			_ = logger.Sync()
		}
	}

	return gateway.NewService(g, logger), cleanup, nil
}

func playerCommand(c *cli.Context) error {
	id, err := logic.ParseRiotID(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	svc, cleanup, err := newService(c)
	if err != nil {
		return err
	}
	defer cleanup()

	state := logic.NewViewState().WithMode(c.String("mode")).BeginSearch(id).SelectMatch(c.String("match"))
	stats, err := svc.FetchPlayerStats(c.Context, state.SearchID, id, gateway.MatchQuery{Size: c.Int("size")})
	if err != nil {
		return describeFetchError(id, err)
	}

	report, err := logic.BuildReport(state, *stats)
	if err != nil {
		return err
	}
	return writeReport(c.App.Writer, report)
}

func leaderboardCommand(c *cli.Context) error {
	region := strings.ToLower(c.String("region"))
	if !logic.IsRegion(region) {
		return fmt.Errorf("unknown region %q (want one of %s)", region, strings.Join(logic.RegionValues(), ", "))
	}

	svc, cleanup, err := newService(c)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := svc.Leaderboard(c.Context, region)
	if err != nil {
		return describeLeaderboardError(region, err)
	}
	return writeLeaderboard(c.App.Writer, region, logic.BuildLeaderboard(entries))
}

func interactiveCommand(c *cli.Context) error {
	svc, cleanup, err := newService(c)
	if err != nil {
		return err
	}
	defer cleanup()

	s := newSession(svc, c.App.Writer, c.Int("size"))
	return s.run(c.Context, os.Stdin)
}
